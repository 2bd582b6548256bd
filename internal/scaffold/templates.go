package scaffold

// Boilerplate templates for the generated project. The layout follows the
// layered conventions the generated guide documents: Django-free business
// logic in core/, facade services in services/, thin views on top.

const manageTmpl = `#!/usr/bin/env python
"""
File: manage.py
Purpose: Django management entry point for {{.Project}}
"""

import os
import sys


def main():
    """Run administrative tasks."""
    os.environ.setdefault('DJANGO_SETTINGS_MODULE', 'config.settings.local')
    try:
        from django.core.management import execute_from_command_line
    except ImportError as exc:
        raise ImportError(
            "Couldn't import Django. Are you sure it's installed and "
            "available on your PYTHONPATH environment variable? Did you "
            "forget to activate a virtual environment?"
        ) from exc
    execute_from_command_line(sys.argv)


if __name__ == '__main__':
    main()
`

const settingsBaseTmpl = `"""
File: config/settings/base.py
Purpose: shared settings for {{.Project}}
"""

import os
import sys
from pathlib import Path

BASE_DIR = Path(__file__).resolve().parent.parent.parent

# Applications live under apps/; put that directory on the Python path so
# the registry entries ('<app>.apps.<App>Config') are importable.
sys.path.append(str(BASE_DIR / 'apps'))

SECRET_KEY = os.environ.get('DJANGO_SECRET_KEY', 'change-me-in-production')

DEBUG = False

ALLOWED_HOSTS = []

INSTALLED_APPS = [
    'django.contrib.admin',
    'django.contrib.auth',
    'django.contrib.contenttypes',
    'django.contrib.sessions',
    'django.contrib.messages',
    'django.contrib.staticfiles',
{{- range .Apps}}
    '{{.}}.apps.{{title .}}Config',
{{- end}}
]

MIDDLEWARE = [
    'django.middleware.security.SecurityMiddleware',
    'django.contrib.sessions.middleware.SessionMiddleware',
    'django.middleware.common.CommonMiddleware',
    'django.middleware.csrf.CsrfViewMiddleware',
    'django.contrib.auth.middleware.AuthenticationMiddleware',
    'django.contrib.messages.middleware.MessageMiddleware',
    'django.middleware.clickjacking.XFrameOptionsMiddleware',
]

ROOT_URLCONF = 'config.urls'

TEMPLATES = [
    {
        'BACKEND': 'django.template.backends.django.DjangoTemplates',
        'DIRS': [BASE_DIR / 'templates'],
        'APP_DIRS': True,
        'OPTIONS': {
            'context_processors': [
                'django.template.context_processors.debug',
                'django.template.context_processors.request',
                'django.contrib.auth.context_processors.auth',
                'django.contrib.messages.context_processors.messages',
            ],
        },
    },
]

WSGI_APPLICATION = 'config.wsgi.application'

DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.sqlite3',
        'NAME': BASE_DIR / 'db.sqlite3',
    }
}

LANGUAGE_CODE = 'en-us'
TIME_ZONE = 'UTC'
USE_I18N = True
USE_TZ = True

STATIC_URL = 'static/'
STATIC_ROOT = BASE_DIR / 'staticfiles'
STATICFILES_DIRS = [BASE_DIR / 'static']

MEDIA_URL = 'media/'
MEDIA_ROOT = BASE_DIR / 'media'

DEFAULT_AUTO_FIELD = 'django.db.models.BigAutoField'
`

const settingsLocalTmpl = `"""
File: config/settings/local.py
Purpose: local development settings for {{.Project}}
"""

from .base import *  # noqa: F401,F403

DEBUG = True

ALLOWED_HOSTS = ['localhost', '127.0.0.1']

INSTALLED_APPS += [
    'django_extensions',
    'debug_toolbar',
]

MIDDLEWARE = ['debug_toolbar.middleware.DebugToolbarMiddleware'] + MIDDLEWARE

INTERNAL_IPS = [
    '127.0.0.1',
]
`

const settingsProductionTmpl = `"""
File: config/settings/production.py
Purpose: production settings for {{.Project}}
"""

import os

from .base import *  # noqa: F401,F403

DEBUG = False

ALLOWED_HOSTS = os.environ.get('DJANGO_ALLOWED_HOSTS', '').split(',')

SECURE_SSL_REDIRECT = True
SESSION_COOKIE_SECURE = True
CSRF_COOKIE_SECURE = True
`

const urlsTmpl = `"""
File: config/urls.py
Purpose: project URL configuration for {{.Project}}
"""

from django.contrib import admin
from django.urls import path, include
from django.conf import settings
from django.conf.urls.static import static

urlpatterns = [
    path('admin/', admin.site.urls),
{{- range .Apps}}
{{- if eq . "main"}}
    path('', include('main.urls')),
{{- else}}
    path('{{.}}/', include('{{.}}.urls')),
{{- end}}
{{- end}}
]

if settings.DEBUG:
    urlpatterns += static(settings.MEDIA_URL, document_root=settings.MEDIA_ROOT)
    try:
        import debug_toolbar
        urlpatterns += [path('__debug__/', include(debug_toolbar.urls))]
    except ImportError:
        pass
`

const wsgiTmpl = `"""
File: config/wsgi.py
Purpose: WSGI entry point for production deployment
"""

import os

from django.core.wsgi import get_wsgi_application

os.environ.setdefault('DJANGO_SETTINGS_MODULE', 'config.settings.production')
application = get_wsgi_application()
`

const asgiTmpl = `"""
File: config/asgi.py
Purpose: ASGI entry point for asynchronous deployment
"""

import os

from django.core.asgi import get_asgi_application

os.environ.setdefault('DJANGO_SETTINGS_MODULE', 'config.settings.production')
application = get_asgi_application()
`

const appConfigTmpl = `"""
File: apps/{{.App}}/apps.py
Purpose: application configuration for {{.App}}
Warning: generated file, do not edit by hand
"""

from django.apps import AppConfig


class {{.AppTitle}}Config(AppConfig):
    default_auto_field = 'django.db.models.BigAutoField'
    name = '{{.App}}'
    verbose_name = '{{.AppTitle}}'
`

const appModelsTmpl = `"""
File: apps/{{.App}}/models.py
Purpose: data models for {{.App}}
"""

from django.db import models

# Create your models here.
`

const appViewsTmpl = `"""
File: apps/{{.App}}/views.py
Purpose: view functions for {{.App}}
"""

from django.shortcuts import render


def index(request):
    context = {
        'title': '{{.AppTitle}}',
        'project_name': '{{.Project}}',
    }
    return render(request, '{{.App}}/index.html', context)
`

const appURLsTmpl = `"""
File: apps/{{.App}}/urls.py
Purpose: URL configuration for {{.App}}
"""

from django.urls import path
from . import views

app_name = '{{.App}}'

urlpatterns = [
    path('', views.index, name='index'),
]
`

const appAdminTmpl = `"""
File: apps/{{.App}}/admin.py
Purpose: admin registrations for {{.App}}
"""

from django.contrib import admin

# Register your models here.
`

const appFormsTmpl = `"""
File: apps/{{.App}}/forms.py
Purpose: form definitions for {{.App}}
"""

from django import forms

# Create your forms here.
`

const appConstantsTmpl = `"""
File: apps/{{.App}}/constants.py
Purpose: constants for {{.App}}
"""
`

const appIndexHTMLTmpl = `{% extends 'base.html' %}

{% block title %}{{"{{"}} title {{"}}"}}{% endblock %}

{% block content %}
<h1>{{"{{"}} title {{"}}"}}</h1>
<p>Welcome to the {{.App}} application of {{"{{"}} project_name {{"}}"}}.</p>
{% endblock %}
`

const baseHTMLTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{% block title %}{{.Project}}{% endblock %}</title>
</head>
<body>
    <main>
        {% block content %}{% endblock %}
    </main>
    <footer>
        <p>&copy; {% now "Y" %} {{.Project}}</p>
    </footer>
</body>
</html>
`

const requirementsBase = `Django>=5.0.8
python-dotenv>=1.0.0
Pillow>=10.0.0
djangorestframework>=3.14.0
`

const requirementsLocal = `-r base.txt
django-debug-toolbar>=4.2.0
django-extensions>=3.2.3
`

const requirementsProduction = `-r base.txt
gunicorn>=21.2.0
psycopg2-binary>=2.9.9
`

const gitignoreContent = `# Python
__pycache__/
*.py[cod]
*.egg-info/
.venv/
env/

# Django
*.log
db.sqlite3
media/
staticfiles/

# djinit
.djinit/
config/app_append_backups/

# IDE
.idea/
.vscode/

# Environment
.env
`

const envExampleTmpl = `# Environment for {{.Project}}
DJANGO_SECRET_KEY=change-me
DJANGO_ALLOWED_HOSTS=localhost,127.0.0.1
`

const readmeTmpl = `# {{.Project}}

Web project scaffolded by djinit.

## Layout

- config/ — project settings (base/local/production split), URLs, WSGI/ASGI
- apps/ — one directory per application, layered: core/ holds framework-free
  business logic, services/ the facade between core and the framework,
  views/templates on top
- requirements/ — pip requirements per environment
- config/app_append_backups/ — timestamped backups of the configuration
  files djinit edits; restore with ` + "`djinit restore`" + `

## Getting started

    python -m venv .venv
    . .venv/bin/activate
    pip install -r requirements/local.txt
    python manage.py migrate
    python manage.py runserver
`
