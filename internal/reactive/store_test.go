package reactive

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sinkRecorder struct {
	errs  []error
	infos []infoEvent
}

type infoEvent struct {
	op      models.Operation
	account models.Account
}

type recordingObserver struct {
	calls [][]models.Account
}

func (o *recordingObserver) Notify(snapshot []models.Account) {
	o.calls = append(o.calls, snapshot)
}

func newTestStore(t *testing.T, path string) (*Store[models.Account], *mock.MockCollectionAdapter, *sinkRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	collection := mock.NewMockCollectionAdapter(ctrl)
	sinks := &sinkRecorder{}

	store := New(collection, Config[models.Account]{
		Path:      path,
		APIPrefix: "api",
		OnError:   func(err error) { sinks.errs = append(sinks.errs, err) },
		OnInfo: func(op models.Operation, a models.Account) {
			sinks.infos = append(sinks.infos, infoEvent{op: op, account: a})
		},
	})

	return store, collection, sinks
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func account(id int64, name, email string) models.Account {
	return models.Account{Base: models.Base{ID: id}, Name: name, Email: email}
}

func ids(accounts []models.Account) []int64 {
	out := make([]int64, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.ID)
	}
	return out
}

// ── construction & state ────────────────────────────────────────────────────

func TestNew_NormalizesPath(t *testing.T) {
	store, _, _ := newTestStore(t, "/API/accounts/")

	assert.Equal(t, "api/accounts", store.Path())
	assert.True(t, store.HasRemote())
	assert.False(t, store.IsSynchronized())
	assert.False(t, store.HasSubscribers())
}

func TestNew_NilSinksAreSafe(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := New(mock.NewMockCollectionAdapter(ctrl), Config[models.Account]{})

	_, err := store.Add(context.Background(), models.Account{})
	assert.ErrorIs(t, err, ErrState)
}

func TestSetPath_KeepsMirror(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())

	store.SetPath("users")

	assert.Equal(t, "api/users", store.Path())
	assert.True(t, store.IsSynchronized())
}

func TestSetPath_EmptyDropsRemoteCapability(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())

	store.SetPath("  ")

	assert.False(t, store.HasRemote())
	assert.False(t, store.IsSynchronized())
}

// ── EmptySynchronize ────────────────────────────────────────────────────────

func TestEmptySynchronize(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	obs := &recordingObserver{}
	store.Subscribe(obs)

	require.NoError(t, store.EmptySynchronize())

	assert.True(t, store.IsSynchronized())
	snapshot, present := store.Snapshot()
	assert.True(t, present)
	assert.Empty(t, snapshot)
	require.Len(t, obs.calls, 1)
	assert.Empty(t, obs.calls[0])
}

func TestEmptySynchronize_NoPath(t *testing.T) {
	store, _, sinks := newTestStore(t, "")

	err := store.EmptySynchronize()

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.False(t, store.IsSynchronized())
	require.Len(t, sinks.errs, 1)
	assert.Equal(t, err, sinks.errs[0])
}

// ── FetchAll ────────────────────────────────────────────────────────────────

func TestFetchAll_ReplacesMirror(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	ctx := context.Background()
	obs := &recordingObserver{}
	store.Subscribe(obs)

	gomock.InOrder(
		collection.EXPECT().List(ctx, "api/accounts").
			Return(mustJSON(t, []models.Account{account(2, "B", "b@x.com"), account(1, "A", "a@x.com")}), nil),
		collection.EXPECT().List(ctx, "api/accounts").
			Return(mustJSON(t, []models.Account{account(3, "C", "c@x.com")}), nil),
	)

	require.NoError(t, store.FetchAll(ctx, nil))
	snapshot, _ := store.Snapshot()
	assert.Equal(t, []int64{1, 2}, ids(snapshot))

	require.NoError(t, store.FetchAll(ctx, nil))
	snapshot, _ = store.Snapshot()
	assert.Equal(t, []int64{3}, ids(snapshot))

	require.Len(t, obs.calls, 2)
	assert.Equal(t, []int64{1, 2}, ids(obs.calls[0]))
}

func TestFetchAll_NotifiesEvenWhenUnchanged(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	ctx := context.Background()
	obs := &recordingObserver{}
	store.Subscribe(obs)

	body := mustJSON(t, []models.Account{account(1, "A", "a@x.com")})
	collection.EXPECT().List(ctx, "api/accounts").Return(body, nil).Times(2)

	require.NoError(t, store.FetchAll(ctx, nil))
	require.NoError(t, store.FetchAll(ctx, nil))

	assert.Len(t, obs.calls, 2)
}

func TestFetchAll_Geo(t *testing.T) {
	tests := []struct {
		name string
		geo  *models.Geo
		want string
	}{
		{name: "no geo", geo: nil, want: "api/accounts"},
		{name: "both coordinates", geo: &models.Geo{Longitude: 2.35, Latitude: 48.85}, want: "api/accounts/2.35/48.85"},
		{name: "zero latitude", geo: &models.Geo{Longitude: 2.35}, want: "api/accounts"},
		{name: "negative", geo: &models.Geo{Longitude: -73.5, Latitude: 45}, want: "api/accounts/-73.5/45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, collection, _ := newTestStore(t, "accounts")
			collection.EXPECT().List(gomock.Any(), tt.want).Return([]byte(`[]`), nil)

			require.NoError(t, store.FetchAll(context.Background(), tt.geo))
		})
	}
}

func TestFetchAll_FailureKeepsPresentMirror(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	ctx := context.Background()

	collection.EXPECT().List(ctx, "api/accounts").
		Return(mustJSON(t, []models.Account{account(1, "A", "a@x.com")}), nil)
	require.NoError(t, store.FetchAll(ctx, nil))
	before, _ := store.Snapshot()

	obs := &recordingObserver{}
	store.Subscribe(obs)

	collection.EXPECT().List(ctx, "api/accounts").Return(nil, adapter.ErrInternalServerError)
	err := store.FetchAll(ctx, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)

	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "fetch all", remoteErr.Op)
	assert.Equal(t, "api/accounts", remoteErr.Path)

	after, present := store.Snapshot()
	assert.True(t, present)
	assert.Equal(t, before, after)
	assert.Empty(t, obs.calls)
	assert.Len(t, sinks.errs, 1)
}

func TestFetchAll_FailureKeepsAbsentMirror(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	collection.EXPECT().List(gomock.Any(), gomock.Any()).Return([]byte(`not json`), nil)

	err := store.FetchAll(context.Background(), nil)

	assert.ErrorIs(t, err, ErrRemote)
	assert.False(t, store.IsSynchronized())
}

func TestFetchAll_NoPath(t *testing.T) {
	store, _, sinks := newTestStore(t, "")

	err := store.FetchAll(context.Background(), nil)

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Len(t, sinks.errs, 1)
}

// ── FetchByID ───────────────────────────────────────────────────────────────

func TestFetchByID_InitializesAbsentMirror(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	ctx := context.Background()
	obs := &recordingObserver{}
	store.Subscribe(obs)

	fetched := account(5, "E", "e@x.com")
	collection.EXPECT().Get(ctx, "api/accounts", int64(5)).Return(mustJSON(t, fetched), nil)

	require.NoError(t, store.FetchByID(ctx, 5))

	assert.True(t, store.IsSynchronized())
	got, ok := store.Get(5)
	require.True(t, ok)
	assert.Equal(t, fetched, got)
	require.Len(t, obs.calls, 1)
	require.Len(t, sinks.infos, 1)
	assert.Equal(t, models.OperationRead, sinks.infos[0].op)
	assert.Equal(t, fetched, sinks.infos[0].account)
}

func TestFetchByID_ReplacesSameID(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	ctx := context.Background()

	collection.EXPECT().List(ctx, gomock.Any()).
		Return(mustJSON(t, []models.Account{account(1, "A", "a@x.com"), account(2, "B", "b@x.com")}), nil)
	require.NoError(t, store.FetchAll(ctx, nil))

	collection.EXPECT().Get(ctx, "api/accounts", int64(1)).
		Return(mustJSON(t, account(1, "A2", "a@x.com")), nil)
	require.NoError(t, store.FetchByID(ctx, 1))

	snapshot, _ := store.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "A2", snapshot[0].Name)
}

func TestFetchByID_NotFound(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	collection.EXPECT().Get(gomock.Any(), "api/accounts", int64(9)).Return(nil, adapter.ErrNotFound)

	err := store.FetchByID(context.Background(), 9)

	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.False(t, store.IsSynchronized())
	assert.Len(t, sinks.errs, 1)
	assert.Empty(t, sinks.infos)
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestAdd_UnsynchronizedIssuesNoRequest(t *testing.T) {
	// the mock has no expectations: any adapter call fails the test
	store, _, sinks := newTestStore(t, "accounts")

	_, err := store.Add(context.Background(), account(0, "A", "a@x.com"))

	assert.ErrorIs(t, err, ErrState)
	assert.Len(t, sinks.errs, 1)
}

func TestAdd_Scenario(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	ctx := context.Background()
	obs := &recordingObserver{}
	store.Subscribe(obs)
	require.NoError(t, store.EmptySynchronize())

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	input := models.Account{Name: "A", Email: "a@x.com"}
	collection.EXPECT().Create(ctx, "api/accounts", input).
		Return([]byte(`{"id":1,"created_at":"2026-03-01T12:00:00Z"}`), nil)

	stored, err := store.Add(ctx, input)
	require.NoError(t, err)

	want := models.Account{Base: models.Base{ID: 1, CreatedAt: createdAt}, Name: "A", Email: "a@x.com"}
	assert.Equal(t, want.ID, stored.ID)
	assert.True(t, createdAt.Equal(stored.CreatedAt))

	snapshot, _ := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(1), snapshot[0].ID)
	assert.Equal(t, "A", snapshot[0].Name)
	assert.Equal(t, "a@x.com", snapshot[0].Email)
	assert.True(t, createdAt.Equal(snapshot[0].CreatedAt))

	require.Len(t, obs.calls, 2) // EmptySynchronize + Add
	assert.Len(t, obs.calls[1], 1)
	require.Len(t, sinks.infos, 1)
	assert.Equal(t, models.OperationAdd, sinks.infos[0].op)
}

func TestAdd_MirrorDropsPassword(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	ctx := context.Background()
	obs := &recordingObserver{}
	store.Subscribe(obs)
	require.NoError(t, store.EmptySynchronize())

	input := models.Account{Name: "A", Email: "a@x.com", Password: "Str0ng!Pass"}
	collection.EXPECT().Create(ctx, "api/accounts", input).
		Return([]byte(`{"id":1,"created_at":"2026-03-01T12:00:00Z"}`), nil)

	stored, err := store.Add(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, stored.Password)

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Empty(t, got.Password)

	require.Len(t, obs.calls, 2)
	require.Len(t, obs.calls[1], 1)
	assert.Empty(t, obs.calls[1][0].Password)
}

func TestAdd_SecondAddDoesNotCollide(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	ctx := context.Background()
	require.NoError(t, store.EmptySynchronize())

	gomock.InOrder(
		collection.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return([]byte(`{"id":1}`), nil),
		collection.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return([]byte(`{"id":2}`), nil),
	)

	_, err := store.Add(ctx, account(0, "A", "a@x.com"))
	require.NoError(t, err)
	_, err = store.Add(ctx, account(0, "B", "b@x.com"))
	require.NoError(t, err)

	snapshot, _ := store.Snapshot()
	assert.Equal(t, []int64{1, 2}, ids(snapshot))
	assert.Equal(t, "A", snapshot[0].Name)
	assert.Equal(t, "B", snapshot[1].Name)
}

func TestAdd_RemoteFailureLeavesMirror(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	collection.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, adapter.ErrConflict)

	_, err := store.Add(context.Background(), account(0, "A", "a@x.com"))

	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	snapshot, _ := store.Snapshot()
	assert.Empty(t, snapshot)
	assert.Empty(t, obs.calls)
	assert.Len(t, sinks.errs, 1)
}

func TestAdd_ResponseWithoutID(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())
	collection.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte(`{}`), nil)

	_, err := store.Add(context.Background(), account(0, "A", "a@x.com"))

	assert.ErrorIs(t, err, ErrRemote)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_StoresServerResponseVerbatim(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	ctx := context.Background()

	collection.EXPECT().List(ctx, gomock.Any()).
		Return(mustJSON(t, []models.Account{account(1, "A", "a@x.com")}), nil)
	require.NoError(t, store.FetchAll(ctx, nil))

	input := account(1, "B", "a@x.com")
	collection.EXPECT().Update(ctx, "api/accounts", int64(1), input).
		Return([]byte(`{"id":1,"name":"B","email":"a@x.com","updated_at":"2026-03-02T00:00:00Z"}`), nil)

	stored, err := store.Update(ctx, input)
	require.NoError(t, err)

	got, ok := store.Get(1)
	require.True(t, ok)
	assert.Equal(t, stored, got)
	assert.NotEqual(t, input, got)
	assert.False(t, got.UpdatedAt.IsZero())
	require.Len(t, sinks.infos, 1)
	assert.Equal(t, models.OperationEdit, sinks.infos[0].op)
}

func TestUpdate_Unsynchronized(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")

	_, err := store.Update(context.Background(), account(1, "B", "b@x.com"))

	assert.ErrorIs(t, err, ErrState)
}

func TestUpdate_Failure(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())
	collection.EXPECT().Update(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := store.Update(context.Background(), account(1, "B", "b@x.com"))

	assert.ErrorIs(t, err, ErrRemote)
	_, ok := store.Get(1)
	assert.False(t, ok)
	assert.Len(t, sinks.errs, 1)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_RemovesLocalEntity(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	ctx := context.Background()

	collection.EXPECT().List(ctx, gomock.Any()).
		Return(mustJSON(t, []models.Account{account(1, "A", "a@x.com"), account(2, "B", "b@x.com")}), nil)
	require.NoError(t, store.FetchAll(ctx, nil))

	obs := &recordingObserver{}
	store.Subscribe(obs)
	collection.EXPECT().Delete(ctx, "api/accounts", int64(1)).Return(nil)

	ok, err := store.Delete(ctx, 1)

	require.NoError(t, err)
	assert.True(t, ok)
	_, found := store.Get(1)
	assert.False(t, found)
	require.Len(t, obs.calls, 1)
	assert.Equal(t, []int64{2}, ids(obs.calls[0]))
	require.Len(t, sinks.infos, 1)
	assert.Equal(t, models.OperationDelete, sinks.infos[0].op)
	assert.Equal(t, "A", sinks.infos[0].account.Name)
}

func TestDelete_AbsentLocallyIsNoopSuccess(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	collection.EXPECT().Delete(gomock.Any(), "api/accounts", int64(42)).Return(nil)

	ok, err := store.Delete(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, obs.calls)
	assert.Empty(t, sinks.infos)
	assert.Empty(t, sinks.errs)
}

func TestDelete_Failure(t *testing.T) {
	store, collection, sinks := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())
	collection.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(1)).Return(adapter.ErrUnauthorized)

	ok, err := store.Delete(context.Background(), 1)

	assert.False(t, ok)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Len(t, sinks.errs, 1)
}

func TestDelete_Unsynchronized(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")

	ok, err := store.Delete(context.Background(), 1)

	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrState)
}

// ── observers & snapshots ───────────────────────────────────────────────────

func TestSubscribe_Idempotent(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	obs := &recordingObserver{}

	store.Subscribe(obs)
	store.Subscribe(obs)
	require.NoError(t, store.EmptySynchronize())

	assert.Len(t, obs.calls, 1)
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	kept, removed := &recordingObserver{}, &recordingObserver{}
	store.Subscribe(kept)
	store.Subscribe(removed)

	store.Unsubscribe(removed)
	store.Unsubscribe(removed)
	require.NoError(t, store.EmptySynchronize())

	assert.Len(t, kept.calls, 1)
	assert.Empty(t, removed.calls)
}

func TestObserveFunc_Cancel(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	calls := 0

	cancel := store.ObserveFunc(func([]models.Account) { calls++ })
	assert.True(t, store.HasSubscribers())
	require.NoError(t, store.EmptySynchronize())

	cancel()
	cancel()
	assert.False(t, store.HasSubscribers())
	require.NoError(t, store.EmptySynchronize())

	assert.Equal(t, 1, calls)
}

func TestObserver_CanCallBackIntoStore(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	var seen bool
	store.ObserveFunc(func([]models.Account) {
		seen = store.IsSynchronized()
	})

	require.NoError(t, store.EmptySynchronize())
	assert.True(t, seen)
}

func TestClear_ResetsWithoutNotify(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	require.NoError(t, store.EmptySynchronize())
	obs := &recordingObserver{}
	store.Subscribe(obs)

	store.Clear()

	assert.False(t, store.IsSynchronized())
	_, present := store.Snapshot()
	assert.False(t, present)
	assert.Empty(t, obs.calls)
}

func TestSnapshot_IsACopy(t *testing.T) {
	store, collection, _ := newTestStore(t, "accounts")
	collection.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(mustJSON(t, []models.Account{account(1, "A", "a@x.com")}), nil)
	obs := &recordingObserver{}
	store.Subscribe(obs)
	require.NoError(t, store.FetchAll(context.Background(), nil))

	snapshot, _ := store.Snapshot()
	snapshot[0].Name = "mutated"
	obs.calls[0][0].Name = "mutated too"

	got, _ := store.Get(1)
	assert.Equal(t, "A", got.Name)
}

func TestNotify_AbsentMirrorNeverBroadcasts(t *testing.T) {
	store, _, _ := newTestStore(t, "accounts")
	obs := &recordingObserver{}
	store.Subscribe(obs)

	store.notify()

	assert.Empty(t, obs.calls)
}
