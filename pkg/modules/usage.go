package modules

import (
	"context"
	"fmt"
	"time"

	"github.com/smartlife-protocol/smartlife-go/pkg/device"
)

// Usage tracks generic daily and monthly usage counters. It is the base
// for energy metering: the query shape and the period bucketing are shared,
// only the value semantics differ.
type Usage struct {
	dev *device.Device
	key string

	// now is replaceable in tests; the query fragment depends on the
	// current year and month.
	now func() time.Time
}

// NewUsage creates a usage module addressing the given protocol target.
func NewUsage(dev *device.Device, key string) *Usage {
	return &Usage{
		dev: dev,
		key: key,
		now: time.Now,
	}
}

// Key implements device.Module.
func (u *Usage) Key() string { return u.key }

// Query implements device.Module. It requests the realtime reading plus the
// current month's daily series and the current year's monthly series.
func (u *Usage) Query() map[string]any {
	now := u.now()
	return map[string]any{
		u.key: map[string]any{
			"get_realtime":  nil,
			"get_daystat":   map[string]any{"year": now.Year(), "month": int(now.Month())},
			"get_monthstat": map[string]any{"year": now.Year()},
		},
	}
}

// Features implements device.Module. The base usage module contributes none.
func (u *Usage) Features() []*device.Feature { return nil }

// Data returns the module's slice of the last aggregated response.
func (u *Usage) Data() (map[string]any, error) {
	return u.dev.ModuleData(u.key)
}

// DailyData returns the raw daily series from the last update.
func (u *Usage) DailyData() ([]map[string]any, error) {
	data, err := u.Data()
	if err != nil {
		return nil, err
	}
	return recordList(data, "get_daystat", "day_list")
}

// MonthlyData returns the raw monthly series from the last update.
func (u *Usage) MonthlyData() ([]map[string]any, error) {
	data, err := u.Data()
	if err != nil {
		return nil, err
	}
	return recordList(data, "get_monthstat", "month_list")
}

// Call issues a single command against this module's target, outside the
// update cycle.
func (u *Usage) Call(ctx context.Context, cmd string, args any) (map[string]any, error) {
	return u.dev.QueryHelper(ctx, u.key, cmd, args)
}

// RawDayStats fetches the daily series for the given year and month.
// Zero values default to the current period.
func (u *Usage) RawDayStats(ctx context.Context, year int, month int) (map[string]any, error) {
	now := u.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return u.Call(ctx, "get_daystat", map[string]any{"year": year, "month": month})
}

// RawMonthStats fetches the monthly series for the given year.
// A zero year defaults to the current one.
func (u *Usage) RawMonthStats(ctx context.Context, year int) (map[string]any, error) {
	if year == 0 {
		year = u.now().Year()
	}
	return u.Call(ctx, "get_monthstat", map[string]any{"year": year})
}

// EraseStats erases all collected usage statistics on the device.
func (u *Usage) EraseStats(ctx context.Context) error {
	_, err := u.Call(ctx, "erase_runtime_stat", nil)
	return err
}

// recordList extracts a []map series (day_list/month_list) from a command
// result inside the module's data slice.
func recordList(data map[string]any, cmd, listKey string) ([]map[string]any, error) {
	result, ok := data[cmd].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s missing from module data", device.ErrMalformedResponse, cmd)
	}
	raw, ok := result[listKey].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s", device.ErrMalformedResponse, cmd, listKey)
	}
	records := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		record, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s entry is not a map", device.ErrMalformedResponse, listKey)
		}
		records = append(records, record)
	}
	return records, nil
}
