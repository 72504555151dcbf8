package nakama

import (
	"context"

	"punto/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type sentMessage struct {
	opCode     int64
	data       []byte
	recipients []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	sent         []sentMessage
	labelUpdates int
	lastLabel    string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.sent = append(md.sent, sentMessage{opCode: opCode, data: append([]byte(nil), data...), recipients: presences})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) byOpCode(opCode int64) []sentMessage {
	var out []sentMessage
	for _, m := range md.sent {
		if m.opCode == opCode {
			out = append(out, m)
		}
	}
	return out
}

// testPresence overrides the identity getters; other Presence methods are unused.
type testPresence struct {
	runtime.Presence
	userID   string
	username string
}

func (p testPresence) GetUserId() string   { return p.userID }
func (p testPresence) GetUsername() string { return p.username }

type testMessage struct {
	runtime.MatchData
	userID string
	opCode int64
	data   []byte
}

func (m testMessage) GetUserId() string { return m.userID }
func (m testMessage) GetOpCode() int64  { return m.opCode }
func (m testMessage) GetData() []byte   { return m.data }

type mockStats struct {
	wins    map[string]int64
	records []ports.RoundRecord
}

func (m *mockStats) GetWins(ctx context.Context, userID string) (int64, error) {
	return m.wins[userID], nil
}

func (m *mockStats) RecordRounds(ctx context.Context, records []ports.RoundRecord) error {
	m.records = append(m.records, records...)
	return nil
}

func (m *mockStats) InitRecordOnce(ctx context.Context, userID string) (bool, error) {
	return true, nil
}

// fakeNakama implements the NakamaModule calls exercised by the adapters and RPCs.
type fakeNakama struct {
	runtime.NakamaModule
	accounts      map[string]*api.Account
	walletUpdates []map[string]int64
	storage       map[string]bool
	matches       map[string]bool
	lastQuery     string
	created       []string
}

func (f *fakeNakama) AccountGetId(ctx context.Context, userID string) (*api.Account, error) {
	if acc, ok := f.accounts[userID]; ok {
		return acc, nil
	}
	return &api.Account{Wallet: "{}"}, nil
}

func (f *fakeNakama) WalletUpdate(ctx context.Context, userID string, changeset map[string]int64, metadata map[string]interface{}, updateLedger bool) (map[string]int64, map[string]int64, error) {
	f.walletUpdates = append(f.walletUpdates, changeset)
	return nil, changeset, nil
}

func (f *fakeNakama) MultiUpdate(ctx context.Context, accountUpdates []*runtime.AccountUpdate, storageWrites []*runtime.StorageWrite, storageDeletes []*runtime.StorageDelete, walletUpdates []*runtime.WalletUpdate, updateLedger bool) ([]*api.StorageObjectAck, []*runtime.WalletUpdateResult, error) {
	if f.storage == nil {
		f.storage = make(map[string]bool)
	}
	for _, w := range storageWrites {
		key := w.Collection + "/" + w.Key + "/" + w.UserID
		if w.Version == "*" && f.storage[key] {
			return nil, nil, runtime.ErrStorageRejectedVersion
		}
		f.storage[key] = true
	}
	return nil, nil, nil
}

func (f *fakeNakama) MatchGet(ctx context.Context, id string) (*api.Match, error) {
	if f.matches[id] {
		return &api.Match{MatchId: id, Authoritative: true}, nil
	}
	return nil, nil
}

func (f *fakeNakama) MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error) {
	f.lastQuery = query
	var out []*api.Match
	for id := range f.matches {
		out = append(out, &api.Match{MatchId: id, Authoritative: true})
	}
	return out, nil
}

func (f *fakeNakama) MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error) {
	f.created = append(f.created, module)
	return "created-match", nil
}
