package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func setupFirestore(t *testing.T) *FirestoreStorage {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	// a fresh project per test keeps emulator data isolated
	store, err := NewFirestoreStorage(context.Background(), "clubhouse-"+uuid.NewString()[:8], "")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestFirestoreIdentities(t *testing.T) {
	store := setupFirestore(t)
	ctx := context.Background()

	created, err := store.CreateIdentity(ctx, model.Identity{Email: "fan@club.example", DisplayName: "Fan", Role: model.RoleMember, CreatedAt: time.Now().UTC()}, "hash")
	require.NoError(t, err)

	_, err = store.CreateIdentity(ctx, model.Identity{Email: "fan@club.example", DisplayName: "Again"}, "hash")
	require.ErrorIs(t, err, errs.ErrEmailAlreadyExists)

	got, hash, err := store.GetIdentityByEmail(ctx, "fan@club.example")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "hash", hash)

	name := "Super Fan"
	require.NoError(t, store.UpdateIdentity(ctx, created.ID, model.ProfileUpdate{DisplayName: &name}))
	require.NoError(t, store.UpdateRole(ctx, created.ID, model.RoleContent))

	got, err = store.GetIdentityByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, name, got.DisplayName)
	require.Equal(t, model.RoleContent, got.Role)

	_, _, err = store.GetIdentityByEmail(ctx, "ghost@club.example")
	require.ErrorIs(t, err, errs.ErrUserNotFound)
	require.ErrorIs(t, store.UpdateRole(ctx, "missing", model.RoleAdmin), errs.ErrUserNotFound)
}

func TestFirestoreConfirmJerseyOrder(t *testing.T) {
	store := setupFirestore(t)
	ctx := context.Background()

	order, err := store.AddJerseyOrder(ctx, model.JerseyOrder{
		Size: "M", NameOnJersey: "J. Okello", DeliveryLocation: "Kampala", ContactInfo: "+256700000000",
		Status: model.Pending, OrderedBy: "u4", OrderDate: time.Now().UTC(),
	})
	require.NoError(t, err)

	mine, err := store.ListJerseyOrders(ctx, "u4")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	r := model.Receipt{Number: "REC-1-AAAAAA", Date: time.Now().UTC(), Amount: 40000, Type: model.JerseyReceipt,
		Payer: model.Party{Name: "Member", Email: "N/A"}}
	confirmed, saved, err := store.ConfirmJerseyOrder(ctx, order.ID, 50000, 10000, r)
	require.NoError(t, err)
	require.Equal(t, model.Confirmed, confirmed.Status)
	require.Equal(t, r.Number, confirmed.ReceiptNumber)

	got, err := store.GetReceipt(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, int64(40000), got.Amount)

	r.Number = "REC-2-BBBBBB"
	_, _, err = store.ConfirmJerseyOrder(ctx, order.ID, 50000, 10000, r)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	_, _, err = store.ConfirmJerseyOrder(ctx, "missing", 1, 0, r)
	require.ErrorIs(t, err, errs.ErrNotFound)

	reloaded, err := store.GetJerseyOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, int64(10000), *reloaded.BalanceDue)
}

func TestFirestoreReceiptNumbersAreUnique(t *testing.T) {
	store := setupFirestore(t)
	ctx := context.Background()

	r := model.Receipt{Number: "MAN-1-CCCCCC", Date: time.Now().UTC(), Amount: 5000, Type: model.ManualReceipt,
		Payer: model.Party{Name: "Sarah", Email: "sarah@example.com"}}
	_, err := store.AddReceipt(ctx, r)
	require.NoError(t, err)

	_, err = store.AddReceipt(ctx, r)
	require.ErrorIs(t, err, errs.ErrDuplicateReceipt)

	list, err := store.ListReceipts(ctx, "sarah@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestFirestoreContent(t *testing.T) {
	store := setupFirestore(t)
	ctx := context.Background()

	_, found, err := store.GetSeasonStats(ctx)
	require.NoError(t, err)
	require.False(t, found)

	season := model.SeasonStats{SeasonName: "2025", Played: 2, Total: 18}
	require.NoError(t, store.PutSeasonStats(ctx, season))
	got, found, err := store.GetSeasonStats(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, season, got)

	a, err := store.AddAnnouncement(ctx, model.Announcement{Title: "t", Content: "c", Date: time.Now().UTC()})
	require.NoError(t, err)
	require.NoError(t, store.DeleteAnnouncement(ctx, a.ID))
	require.ErrorIs(t, store.DeleteAnnouncement(ctx, a.ID), errs.ErrNotFound)
}
