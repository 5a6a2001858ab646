package template

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGetConfig(t *testing.T) {
	content, err := NewProjectTemplate(MySQL).GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		t.Fatalf("Config is not valid JSON: %v", err)
	}
	db, ok := parsed["database"].(map[string]any)
	if !ok || db["provider"] != "mysql" {
		t.Errorf("Expected mysql provider, got %v", parsed["database"])
	}
	if _, ok := parsed["bounds"]; !ok {
		t.Error("Expected bounds in the rendered config")
	}
}

func TestGetEnvTemplate(t *testing.T) {
	env := NewProjectTemplate(SQLite).GetEnvTemplate()
	if !strings.HasPrefix(env, "DATABASE_URL=sqlite://") {
		t.Errorf("Unexpected env template %q", env)
	}
}

func TestValidateDatabaseType(t *testing.T) {
	if ValidateDatabaseType("postgres") != PostgreSQL {
		t.Error("Expected postgres to map to PostgreSQL")
	}
	if ValidateDatabaseType("sqlite3") != SQLite {
		t.Error("Expected sqlite3 to map to SQLite")
	}
	if ValidateDatabaseType("oracle") != PostgreSQL {
		t.Error("Expected unknown types to fall back to PostgreSQL")
	}
}
