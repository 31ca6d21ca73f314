package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Store keys used by the on-device persisted store. The store itself lives
// outside this service; only the key contract is fixed here.
const (
	KeyToken      = "token"
	KeyUser       = "user"
	KeyActiveFarm = "activeFarm"
)

// ErrNotFound is returned by Store implementations when a key has no value.
var ErrNotFound = errors.New("session: key not found")

// Store is the persisted key-value contract holding auth and farm context.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// User identifies the signed-in account.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName is used as the default administrator on health records.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Farm is the active farm selection.
type Farm struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is the explicit request context threaded through every service
// call. Resolving it once per request pins the farm for the whole call
// chain, so a mid-flight farm switch cannot split a single operation across
// two farms.
type Session struct {
	Token string
	User  User
	Farm  Farm
}

// HasToken reports whether the session carries a bearer token.
func (s Session) HasToken() bool { return s.Token != "" }

// HasFarm reports whether an active farm is selected.
func (s Session) HasFarm() bool { return s.Farm.ID != "" }

// Resolve reads the three session keys from the store and decodes them into
// a Session. A missing token or farm is not an error here; callers check
// HasToken/HasFarm against the operation's preconditions.
func Resolve(ctx context.Context, store Store) (Session, error) {
	var sess Session

	token, err := store.Get(ctx, KeyToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Session{}, fmt.Errorf("read token: %w", err)
	}
	sess.Token = token

	if raw, err := store.Get(ctx, KeyUser); err == nil && raw != "" {
		if err := json.Unmarshal([]byte(raw), &sess.User); err != nil {
			return Session{}, fmt.Errorf("decode user: %w", err)
		}
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return Session{}, fmt.Errorf("read user: %w", err)
	}

	if raw, err := store.Get(ctx, KeyActiveFarm); err == nil && raw != "" {
		if err := json.Unmarshal([]byte(raw), &sess.Farm); err != nil {
			return Session{}, fmt.Errorf("decode active farm: %w", err)
		}
	} else if err != nil && !errors.Is(err, ErrNotFound) {
		return Session{}, fmt.Errorf("read active farm: %w", err)
	}

	return sess, nil
}
