package domain

import "time"

// Endpoint は固定の遅延後に固定のボディを返すレイテンシ模擬エンドポイントです。
type Endpoint struct {
	Path  string
	Delay time.Duration
	Body  string
}

// Endpoints はレイテンシ模擬エンドポイントの一覧を返します。
// 遅延はバックエンドのアクセス時間の桁を模したもので、設定では変えられません。
func Endpoints() []Endpoint {
	return []Endpoint{
		{Path: "/fast", Delay: 0, Body: "Fast response \n"},
		{Path: "/memory", Delay: 1 * time.Millisecond, Body: "Memory response (1ms latency - RAM-like) \n"},
		{Path: "/database", Delay: 20 * time.Millisecond, Body: "Database response (20ms latency - HDD-like) \n"},
		{Path: "/slow", Delay: 1000 * time.Millisecond, Body: "Slow response (after 1 second delay) \n"},
	}
}
