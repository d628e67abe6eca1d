package entity

import "context"

type Session struct {
	AppName string
	UserID  string
	ID      string
}

type sessionKey struct{}

// WithSession binds the session to ctx so tools can reach its artifacts.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
