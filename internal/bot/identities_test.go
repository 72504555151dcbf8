package bot

import "testing"

func TestSyntheticIdentityIsBot(t *testing.T) {
	id := GetBotIdentity(2)
	if id.UserID == "" {
		t.Fatal("expected a user id")
	}
	if !IsBot(id.UserID) {
		t.Fatalf("IsBot(%q) = false, want true", id.UserID)
	}
	if IsBot("6f1c2c1e-user") {
		t.Fatal("regular user reported as bot")
	}
}

func TestNewAgentDefaultsToEasy(t *testing.T) {
	agent, err := NewAgent("bot-7")
	if err != nil {
		t.Fatalf("NewAgent error: %v", err)
	}
	if _, ok := agent.Strategy.(*RandomBot); !ok {
		t.Fatalf("strategy = %T, want *RandomBot", agent.Strategy)
	}
}
