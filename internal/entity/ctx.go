package entity

import (
	"context"
)

type CtxKey int

const (
	CtxKeyUser CtxKey = iota
	CtxKeyLang
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser, user)
}

// UserFromCtx returns user from context or ErrUnauthenticated if user is not found.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser).(User)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}

func CtxWithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, CtxKeyLang, lang)
}

// LangFromCtx returns the resolved locale or empty string if none was set.
func LangFromCtx(ctx context.Context) string {
	lang, ok := ctx.Value(CtxKeyLang).(string)
	if !ok {
		return ""
	}

	return lang
}
