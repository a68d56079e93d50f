package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"stripe": map[string]any{
			"webhookSecret": "",
			"appDomain":     "",
		},
		"firebase": map[string]any{
			"projectId": "",
		},
		"sessionStore": map[string]any{
			"provider": "memory",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STRIPE_WEBHOOKSECRET", want: "stripe.webhookSecret"},
		{envKey: "STRIPE_APPDOMAIN", want: "stripe.appDomain"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "SESSIONSTORE_PROVIDER", want: "sessionStore.provider"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
