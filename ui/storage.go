package ui

import (
	"context"
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"weather-client/storage"
)

// LocalStorage is a storage.KV over window.localStorage. Values are stored verbatim so
// the page shares its keys with any other script on the origin.
type LocalStorage struct{}

var _ storage.KV = LocalStorage{}

func localStorage() app.Value {
	return app.Window().Get("localStorage")
}

func (LocalStorage) Get(_ context.Context, key string) (value string, err error) {
	defer recoverJS("getItem", &err)

	v := localStorage().Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", storage.ErrNotFound
	}
	return v.String(), nil
}

func (LocalStorage) Set(_ context.Context, key, value string) (err error) {
	defer recoverJS("setItem", &err)

	localStorage().Call("setItem", key, value)
	return nil
}

func (LocalStorage) Close() error { return nil }

// recoverJS turns a thrown JS exception (quota, disabled storage) into an error
func recoverJS(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("localStorage %s: %v", op, r)
	}
}
