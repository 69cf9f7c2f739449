package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/compactgantt/internal/domain"
)

func requireDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	d, err := domain.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, s)
	}
	return d, nil
}
