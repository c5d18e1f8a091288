package stooq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGetDailyHistory(t *testing.T) {
	t.Run("parses daily csv", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "aapl.us", r.URL.Query().Get("s"))
			require.Equal(t, "d", r.URL.Query().Get("i"))
			w.Write([]byte("Date,Open,High,Low,Close,Volume\n2024-01-02,185.54,186.38,183.92,185.64,82488700\n2024-01-03,184.22,185.88,183.43,184.25,58414500\n"))
		}))
		defer server.Close()

		client := NewClient()
		client.BaseUrl = server.URL

		bars, err := client.GetDailyHistory(
			context.Background(),
			"aapl.us",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]DailyBar{
					{
						Date:   "2024-01-02",
						Open:   185.54,
						High:   186.38,
						Low:    183.92,
						Close:  185.64,
						Volume: 82488700,
					},
					{
						Date:   "2024-01-03",
						Open:   184.22,
						High:   185.88,
						Low:    183.43,
						Close:  184.25,
						Volume: 58414500,
					},
				},
				bars,
			),
		)
	})

	t.Run("no data message is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("No data"))
		}))
		defer server.Close()

		client := NewClient()
		client.BaseUrl = server.URL

		_, err := client.GetDailyHistory(context.Background(), "notareal.us", time.Now().AddDate(0, 0, -5), time.Now())
		require.ErrorContains(t, err, "no csv data")
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(503)
		}))
		defer server.Close()

		client := NewClient()
		client.BaseUrl = server.URL

		_, err := client.GetDailyHistory(context.Background(), "aapl.us", time.Now().AddDate(0, 0, -5), time.Now())
		require.ErrorContains(t, err, "status code 503")
	})
}
