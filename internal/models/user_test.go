package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserJSONNeverExposesPasswordHash(t *testing.T) {
	u := User{
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$secretsecretsecret",
		FullName:     "Ana Reyes",
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if strings.Contains(string(data), "secretsecret") || strings.Contains(string(data), "password") {
		t.Errorf("user JSON leaks the password hash: %s", data)
	}
}
