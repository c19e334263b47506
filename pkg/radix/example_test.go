package radix_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bft-labs/radix/pkg/radix"
)

// ExampleSession_Convert shows a presentation layer driving a session.
func ExampleSession_Convert() {
	dir, _ := os.MkdirTemp("", "radix-example")
	defer os.RemoveAll(dir)

	s, err := radix.New(radix.Config{HistoryDir: dir},
		radix.WithClock(func() time.Time { return time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC) }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer s.Close()

	ctx := context.Background()
	s.Load(ctx)

	rec, err := s.Convert(ctx, "1010", radix.Binary, radix.Decimal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s (%s) -> %s (%s) at %s %s\n",
		rec.Input, rec.FromBase.Name(), rec.Output, rec.ToBase.Name(), rec.Date, rec.Timestamp)

	_, err = s.Convert(ctx, "9", radix.Octal, radix.Decimal)
	var digitErr *radix.InvalidDigitsError
	if errors.As(err, &digitErr) {
		fmt.Println(err)
	}

	fmt.Println("history entries:", len(s.History()))

	// Output:
	// 1010 (Binary) -> 10 (Decimal) at 1/2/2024 9:30:00 AM
	// radix: invalid characters for base-8 number
	// history entries: 1
}
