package i18n

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestLocales cria arquivos de locale temporários para testes
func setupTestLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	locales := map[string]string{
		"en.json": `{
  "error.not_found.detail": "{{.Resource}} not found",
  "agent.deleted": "Agent deleted successfully"
}`,
		"pt-BR.json": `{
  "error.not_found.detail": "{{.Resource}} não encontrado",
  "agent.deleted": "Agente removido com sucesso"
}`,
		"es.json": `{
  "error.not_found.detail": "{{.Resource}} no encontrado"
}`,
	}
	for name, content := range locales {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(content), 0644); err != nil { //nolint:gosec
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		service, err := NewService(tmpDir, "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		if len(service.GetSupportedLanguages()) != 3 {
			t.Errorf("esperava 3 idiomas suportados, obteve %d", len(service.GetSupportedLanguages()))
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		if _, err := NewService(filepath.Join(t.TempDir(), "missing"), "en"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		if _, err := NewService(tmpDir, "fr"); err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewService(setupTestLocales(t), "en")
	if err != nil {
		t.Fatalf("failed to initialize service: %v", err)
	}

	t.Run("traduz para o idioma pedido", func(t *testing.T) {
		got := service.T("pt-BR", "agent.deleted")
		if got != "Agente removido com sucesso" {
			t.Errorf("esperava tradução em português, obteve '%s'", got)
		}
	})

	t.Run("interpola parâmetros via template", func(t *testing.T) {
		got := service.T("en", "error.not_found.detail", map[string]interface{}{"Resource": "Agent"})
		if got != "Agent not found" {
			t.Errorf("esperava 'Agent not found', obteve '%s'", got)
		}
	})

	t.Run("faz fallback para o idioma padrão", func(t *testing.T) {
		got := service.T("es", "agent.deleted")
		if got != "Agent deleted successfully" {
			t.Errorf("esperava fallback em inglês, obteve '%s'", got)
		}
	})

	t.Run("retorna a chave quando não há tradução", func(t *testing.T) {
		got := service.T("en", "missing.key")
		if got != "missing.key" {
			t.Errorf("esperava a própria chave, obteve '%s'", got)
		}
	})

	t.Run("idioma desconhecido usa o padrão", func(t *testing.T) {
		got := service.T("fr", "agent.deleted")
		if got != "Agent deleted successfully" {
			t.Errorf("esperava fallback em inglês, obteve '%s'", got)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	service, err := NewService(setupTestLocales(t), "en")
	if err != nil {
		t.Fatalf("failed to initialize service: %v", err)
	}

	if !service.IsLanguageSupported("pt-BR") {
		t.Error("pt-BR deveria ser suportado")
	}
	if service.IsLanguageSupported("fr") {
		t.Error("fr não deveria ser suportado")
	}
}
