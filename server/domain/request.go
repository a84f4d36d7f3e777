package domain

import (
	"context"

	"github.com/google/uuid"
)

// RequestID は1リクエストの開始ログと完了ログを対応付ける識別子です。
type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (id RequestID) String() string { return string(id) }

type requestIDKey struct{}

// WithRequestID はctxにRequestIDを紐付けます。
func WithRequestID(ctx context.Context, id RequestID) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom はctxに紐付いたRequestIDを返します。未設定なら空文字とfalseを返します。
func RequestIDFrom(ctx context.Context) (RequestID, bool) {
	id, ok := ctx.Value(requestIDKey{}).(RequestID)
	return id, ok
}
