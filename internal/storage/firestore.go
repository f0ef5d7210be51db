package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/model"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection          = "users"
	emailsCollection         = "user_emails"
	transactionsCollection   = "transactions"
	ordersCollection         = "jersey_orders"
	receiptsCollection       = "receipts"
	receiptNumbersCollection = "receipt_numbers"
	failuresCollection       = "notification_failures"
	announcementsCollection  = "announcements"
	socialCollection         = "social_stats"
	statsCollection          = "stats"
	seasonDoc                = "season"
)

// FirestoreStorage keeps every entity in its own collection. Email and
// receipt number uniqueness is enforced by index documents keyed on the value.
type FirestoreStorage struct {
	client *firestore.Client
}

type userDoc struct {
	model.Identity
	PasswordHash string `firestore:"passwordHash"`
}

// NewFirestoreStorage connects through the Firebase Admin SDK. The emulator is
// used when FIRESTORE_EMULATOR_HOST is set.
func NewFirestoreStorage(ctx context.Context, projectID, credentialsFile string) (*FirestoreStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore: %w", err)
	}

	return &FirestoreStorage{client: client}, nil
}

func (s *FirestoreStorage) Close() error {
	return s.client.Close()
}

func fsError(err error, op string) error {
	if status.Code(err) == codes.PermissionDenied {
		return fmt.Errorf("%s: %w", op, errs.ErrPermissionDenied)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func emailKey(email string) string {
	return url.PathEscape(email)
}

func readAll[T any](iter *firestore.DocumentIterator, setID func(*T, string)) ([]T, error) {
	defer iter.Stop()

	list := []T{}
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var v T
		if err := snap.DataTo(&v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", snap.Ref.Path, err)
		}
		if setID != nil {
			setID(&v, snap.Ref.ID)
		}
		list = append(list, v)
	}
	return list, nil
}

func (s *FirestoreStorage) CreateIdentity(ctx context.Context, identity model.Identity, passwordHash string) (model.Identity, error) {
	userRef := s.client.Collection(usersCollection).NewDoc()
	emailRef := s.client.Collection(emailsCollection).Doc(emailKey(identity.Email))
	identity.ID = userRef.ID

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(emailRef)
		if err == nil {
			return errs.ErrEmailAlreadyExists
		}
		if !isNotFound(err) {
			return err
		}

		if err := tx.Create(emailRef, map[string]any{"userId": identity.ID}); err != nil {
			return err
		}
		return tx.Create(userRef, userDoc{Identity: identity, PasswordHash: passwordHash})
	})
	if err != nil {
		if errors.Is(err, errs.ErrEmailAlreadyExists) || status.Code(err) == codes.AlreadyExists {
			return model.Identity{}, errs.ErrEmailAlreadyExists
		}
		return model.Identity{}, fsError(err, "create identity")
	}

	return identity, nil
}

func (s *FirestoreStorage) getUserDoc(ctx context.Context, id string) (userDoc, error) {
	snap, err := s.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return userDoc{}, errs.ErrUserNotFound
		}
		return userDoc{}, fsError(err, "get identity")
	}

	var u userDoc
	if err := snap.DataTo(&u); err != nil {
		return userDoc{}, fmt.Errorf("decode identity: %w", err)
	}
	u.ID = snap.Ref.ID
	return u, nil
}

func (s *FirestoreStorage) GetIdentityByEmail(ctx context.Context, email string) (model.Identity, string, error) {
	snap, err := s.client.Collection(emailsCollection).Doc(emailKey(email)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return model.Identity{}, "", errs.ErrUserNotFound
		}
		return model.Identity{}, "", fsError(err, "get identity by email")
	}

	userID, ok := snap.Data()["userId"].(string)
	if !ok {
		return model.Identity{}, "", errs.ErrUserNotFound
	}

	u, err := s.getUserDoc(ctx, userID)
	if err != nil {
		return model.Identity{}, "", err
	}
	return u.Identity, u.PasswordHash, nil
}

func (s *FirestoreStorage) GetIdentityByID(ctx context.Context, id string) (model.Identity, error) {
	u, err := s.getUserDoc(ctx, id)
	if err != nil {
		return model.Identity{}, err
	}
	return u.Identity, nil
}

func (s *FirestoreStorage) ListIdentities(ctx context.Context) ([]model.Identity, error) {
	iter := s.client.Collection(usersCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	users, err := readAll(iter, func(u *userDoc, id string) { u.ID = id })
	if err != nil {
		return nil, fsError(err, "list identities")
	}

	list := make([]model.Identity, 0, len(users))
	for _, u := range users {
		list = append(list, u.Identity)
	}
	return list, nil
}

func (s *FirestoreStorage) update(ctx context.Context, collection, id string, updates []firestore.Update, notFound error, op string) error {
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	if err != nil {
		if isNotFound(err) {
			return notFound
		}
		return fsError(err, op)
	}
	return nil
}

func (s *FirestoreStorage) UpdateIdentity(ctx context.Context, id string, update model.ProfileUpdate) error {
	var updates []firestore.Update
	if update.DisplayName != nil {
		updates = append(updates, firestore.Update{Path: "username", Value: *update.DisplayName})
	}
	if update.FullName != nil {
		updates = append(updates, firestore.Update{Path: "fullName", Value: *update.FullName})
	}
	if update.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phoneNumber", Value: *update.Phone})
	}
	if update.AvatarURL != nil {
		updates = append(updates, firestore.Update{Path: "photoURL", Value: *update.AvatarURL})
	}
	if len(updates) == 0 {
		return nil
	}
	return s.update(ctx, usersCollection, id, updates, errs.ErrUserNotFound, "update identity")
}

func (s *FirestoreStorage) UpdateRole(ctx context.Context, id string, role model.Role) error {
	return s.update(ctx, usersCollection, id, []firestore.Update{{Path: "role", Value: string(role)}}, errs.ErrUserNotFound, "update role")
}

func (s *FirestoreStorage) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	return s.update(ctx, usersCollection, id, []firestore.Update{{Path: "passwordHash", Value: passwordHash}}, errs.ErrUserNotFound, "update password")
}

func (s *FirestoreStorage) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	ref := s.client.Collection(transactionsCollection).NewDoc()
	if _, err := ref.Create(ctx, t); err != nil {
		return model.Transaction{}, fsError(err, "add transaction")
	}
	t.ID = ref.ID
	return t, nil
}

func (s *FirestoreStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	iter := s.client.Collection(transactionsCollection).OrderBy("date", firestore.Desc).Documents(ctx)
	list, err := readAll(iter, func(t *model.Transaction, id string) { t.ID = id })
	if err != nil {
		return nil, fsError(err, "list transactions")
	}
	return list, nil
}

func (s *FirestoreStorage) AddJerseyOrder(ctx context.Context, order model.JerseyOrder) (model.JerseyOrder, error) {
	ref := s.client.Collection(ordersCollection).NewDoc()
	if _, err := ref.Create(ctx, order); err != nil {
		return model.JerseyOrder{}, fsError(err, "add jersey order")
	}
	order.ID = ref.ID
	return order, nil
}

func (s *FirestoreStorage) GetJerseyOrder(ctx context.Context, id string) (model.JerseyOrder, error) {
	snap, err := s.client.Collection(ordersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return model.JerseyOrder{}, errs.ErrNotFound
		}
		return model.JerseyOrder{}, fsError(err, "get jersey order")
	}

	var o model.JerseyOrder
	if err := snap.DataTo(&o); err != nil {
		return model.JerseyOrder{}, fmt.Errorf("decode jersey order: %w", err)
	}
	o.ID = snap.Ref.ID
	return o, nil
}

// ListJerseyOrders sorts filtered results in memory so no composite index is needed.
func (s *FirestoreStorage) ListJerseyOrders(ctx context.Context, orderedBy string) ([]model.JerseyOrder, error) {
	q := s.client.Collection(ordersCollection).Query
	if orderedBy != "" {
		q = q.Where("orderedBy", "==", orderedBy)
	} else {
		q = q.OrderBy("orderDate", firestore.Desc)
	}

	list, err := readAll(q.Documents(ctx), func(o *model.JerseyOrder, id string) { o.ID = id })
	if err != nil {
		return nil, fsError(err, "list jersey orders")
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].OrderDate.After(list[j].OrderDate) })
	return list, nil
}

// createReceipt stages the receipt and its number index inside tx. The commit
// fails with AlreadyExists if the number was taken.
func (s *FirestoreStorage) createReceipt(tx *firestore.Transaction, r model.Receipt) (model.Receipt, error) {
	ref := s.client.Collection(receiptsCollection).NewDoc()
	numberRef := s.client.Collection(receiptNumbersCollection).Doc(r.Number)

	if err := tx.Create(numberRef, map[string]any{"receiptId": ref.ID}); err != nil {
		return model.Receipt{}, err
	}
	if err := tx.Create(ref, r); err != nil {
		return model.Receipt{}, err
	}
	r.ID = ref.ID
	return r, nil
}

func receiptError(err error, r model.Receipt, op string) error {
	if status.Code(err) == codes.AlreadyExists {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateReceipt, r.Number)
	}
	return fsError(err, op)
}

func (s *FirestoreStorage) ConfirmJerseyOrder(ctx context.Context, id string, charged, balance int64, r model.Receipt) (model.JerseyOrder, model.Receipt, error) {
	orderRef := s.client.Collection(ordersCollection).Doc(id)

	var order model.JerseyOrder
	var saved model.Receipt
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(orderRef)
		if err != nil {
			if isNotFound(err) {
				return errs.ErrNotFound
			}
			return err
		}

		order = model.JerseyOrder{}
		if err := snap.DataTo(&order); err != nil {
			return fmt.Errorf("decode jersey order: %w", err)
		}
		order.ID = id
		if order.Status != model.Pending {
			return fmt.Errorf("%w: order %s is not pending", errs.ErrInvalidState, id)
		}

		saved, err = s.createReceipt(tx, r)
		if err != nil {
			return err
		}

		order.Status = model.Confirmed
		order.AmountCharged = &charged
		order.BalanceDue = &balance
		order.ReceiptNumber = r.Number
		return tx.Set(orderRef, order)
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidState) {
			return model.JerseyOrder{}, model.Receipt{}, err
		}
		return model.JerseyOrder{}, model.Receipt{}, receiptError(err, r, "confirm jersey order")
	}

	return order, saved, nil
}

func (s *FirestoreStorage) AddReceipt(ctx context.Context, r model.Receipt) (model.Receipt, error) {
	var saved model.Receipt
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var err error
		saved, err = s.createReceipt(tx, r)
		return err
	})
	if err != nil {
		return model.Receipt{}, receiptError(err, r, "add receipt")
	}
	return saved, nil
}

func (s *FirestoreStorage) GetReceipt(ctx context.Context, id string) (model.Receipt, error) {
	snap, err := s.client.Collection(receiptsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return model.Receipt{}, errs.ErrNotFound
		}
		return model.Receipt{}, fsError(err, "get receipt")
	}

	var r model.Receipt
	if err := snap.DataTo(&r); err != nil {
		return model.Receipt{}, fmt.Errorf("decode receipt: %w", err)
	}
	r.ID = snap.Ref.ID
	return r, nil
}

// ListReceipts matches payer emails exactly. Manual receipts store them lowercased.
func (s *FirestoreStorage) ListReceipts(ctx context.Context, payerEmail string) ([]model.Receipt, error) {
	q := s.client.Collection(receiptsCollection).Query
	if payerEmail != "" {
		q = q.Where("payer.email", "==", payerEmail)
	} else {
		q = q.OrderBy("date", firestore.Desc)
	}

	list, err := readAll(q.Documents(ctx), func(r *model.Receipt, id string) { r.ID = id })
	if err != nil {
		return nil, fsError(err, "list receipts")
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *FirestoreStorage) RecordNotificationFailure(ctx context.Context, f model.NotificationFailure) error {
	if _, _, err := s.client.Collection(failuresCollection).Add(ctx, f); err != nil {
		return fsError(err, "record notification failure")
	}
	return nil
}

func (s *FirestoreStorage) ListNotificationFailures(ctx context.Context) ([]model.NotificationFailure, error) {
	iter := s.client.Collection(failuresCollection).OrderBy("occurredAt", firestore.Desc).Documents(ctx)
	list, err := readAll(iter, func(f *model.NotificationFailure, id string) { f.ID = id })
	if err != nil {
		return nil, fsError(err, "list notification failures")
	}
	return list, nil
}

func (s *FirestoreStorage) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	iter := s.client.Collection(announcementsCollection).OrderBy("date", firestore.Desc).Documents(ctx)
	list, err := readAll(iter, func(a *model.Announcement, id string) { a.ID = id })
	if err != nil {
		return nil, fsError(err, "list announcements")
	}
	return list, nil
}

func (s *FirestoreStorage) AddAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	ref, _, err := s.client.Collection(announcementsCollection).Add(ctx, a)
	if err != nil {
		return model.Announcement{}, fsError(err, "add announcement")
	}
	a.ID = ref.ID
	return a, nil
}

// DeleteAnnouncement requires the document to exist.
func (s *FirestoreStorage) DeleteAnnouncement(ctx context.Context, id string) error {
	_, err := s.client.Collection(announcementsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errs.ErrNotFound
		}
		return fsError(err, "delete announcement")
	}
	return nil
}

func (s *FirestoreStorage) GetSeasonStats(ctx context.Context) (model.SeasonStats, bool, error) {
	snap, err := s.client.Collection(statsCollection).Doc(seasonDoc).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return model.SeasonStats{}, false, nil
		}
		return model.SeasonStats{}, false, fsError(err, "get season stats")
	}

	var st model.SeasonStats
	if err := snap.DataTo(&st); err != nil {
		return model.SeasonStats{}, false, fmt.Errorf("decode season stats: %w", err)
	}
	return st, true, nil
}

func (s *FirestoreStorage) PutSeasonStats(ctx context.Context, st model.SeasonStats) error {
	if _, err := s.client.Collection(statsCollection).Doc(seasonDoc).Set(ctx, st); err != nil {
		return fsError(err, "put season stats")
	}
	return nil
}

func (s *FirestoreStorage) ListSocialStats(ctx context.Context) ([]model.SocialStats, error) {
	list, err := readAll[model.SocialStats](s.client.Collection(socialCollection).Documents(ctx), nil)
	if err != nil {
		return nil, fsError(err, "list social stats")
	}
	return list, nil
}

func (s *FirestoreStorage) UpsertSocialStats(ctx context.Context, st model.SocialStats) error {
	if _, err := s.client.Collection(socialCollection).Doc(st.Platform).Set(ctx, st); err != nil {
		return fsError(err, "upsert social stats")
	}
	return nil
}
