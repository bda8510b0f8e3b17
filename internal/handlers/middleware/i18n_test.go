package middleware

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/propfinder-backend/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	tmpDir := t.TempDir()

	locales := map[string]string{
		"en.json":    `{"error.not_found.title": "Not Found"}`,
		"pt-BR.json": `{"error.not_found.title": "Não Encontrado"}`,
		"es.json":    `{"error.not_found.title": "No Encontrado"}`,
	}
	for name, content := range locales {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil { //nolint:gosec
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	service, err := i18n.NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("failed to initialize i18n service: %v", err)
	}

	return service
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	detect := func(t *testing.T, target, acceptLang string) string {
		t.Helper()

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", target, nil)
		if acceptLang != "" {
			req.Header.Set("Accept-Language", acceptLang)
		}
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(LanguageContextKey)
		if !exists {
			t.Fatal("idioma não foi definido no contexto")
		}
		return lang.(string)
	}

	t.Run("detecta idioma do query parameter", func(t *testing.T) {
		if lang := detect(t, "/?lang=pt-BR", ""); lang != "pt-BR" {
			t.Errorf("esperava 'pt-BR', obteve '%s'", lang)
		}
	})

	t.Run("detecta idioma do Accept-Language header", func(t *testing.T) {
		if lang := detect(t, "/", "es,en;q=0.9"); lang != "es" {
			t.Errorf("esperava 'es', obteve '%s'", lang)
		}
	})

	t.Run("usa idioma padrão quando nenhum é especificado", func(t *testing.T) {
		if lang := detect(t, "/", ""); lang != "en" {
			t.Errorf("esperava 'en' (padrão), obteve '%s'", lang)
		}
	})

	t.Run("query parameter tem prioridade sobre Accept-Language", func(t *testing.T) {
		if lang := detect(t, "/?lang=pt-BR", "es"); lang != "pt-BR" {
			t.Errorf("esperava 'pt-BR', obteve '%s'", lang)
		}
	})

	t.Run("ignora query parameter inválido e usa Accept-Language", func(t *testing.T) {
		if lang := detect(t, "/?lang=fr", "es"); lang != "es" {
			t.Errorf("esperava 'es', obteve '%s'", lang)
		}
	})

	t.Run("define serviço i18n no contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		middleware.DetectLanguage()(c)

		service, exists := c.Get(I18nServiceContextKey)
		if !exists || service == nil {
			t.Fatal("serviço i18n não foi definido no contexto")
		}
	})
}

func TestI18nMiddleware_parseAcceptLanguage(t *testing.T) {
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{"idioma único suportado", "pt-BR", "pt-BR"},
		{"múltiplos idiomas, primeiro é suportado", "es,pt-BR;q=0.9,en;q=0.8", "es"},
		{"múltiplos idiomas, segundo é suportado", "fr,pt-BR;q=0.9,en;q=0.8", "pt-BR"},
		{"nenhum idioma suportado", "fr,de;q=0.9", ""},
		{"header vazio", "", ""},
		{"variante sem região não suportada", "pt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.parseAcceptLanguage(tt.acceptLang)
			if result != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, result)
			}
		})
	}
}
