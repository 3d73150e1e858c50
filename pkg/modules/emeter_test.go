package modules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlife-protocol/smartlife-go/internal/mock"
	"github.com/smartlife-protocol/smartlife-go/pkg/device"
)

// july15 pins the stat queries to a known period.
var july15 = time.Date(2022, time.July, 15, 12, 0, 0, 0, time.UTC)

func newEmeterDevice(t *testing.T, responses map[string]map[string]any) (*device.Device, *Emeter, *mock.Protocol) {
	t.Helper()

	proto := &mock.Protocol{Responses: responses}
	dev := device.New("127.0.0.1", proto)
	em := NewEmeter(dev, "emeter")
	em.now = func() time.Time { return july15 }
	require.NoError(t, dev.AddModule(em))
	return dev, em, proto
}

func emeterResponses() map[string]map[string]any {
	return map[string]map[string]any{
		"system": {
			"get_sysinfo": map[string]any{
				"alias": "Desk plug",
				"model": "HS110(EU)",
			},
		},
		"emeter": {
			"get_realtime": map[string]any{
				"power":    12.5,
				"voltage":  231.2,
				"current":  0.054,
				"total":    1.234,
				"err_code": float64(0),
			},
			"get_daystat": map[string]any{
				"day_list": []any{
					map[string]any{"year": float64(2022), "month": float64(7), "day": float64(14), "energy": 0.2},
					map[string]any{"year": float64(2022), "month": float64(7), "day": float64(15), "energy": 0.5},
				},
				"err_code": float64(0),
			},
			"get_monthstat": map[string]any{
				"month_list": []any{
					map[string]any{"year": float64(2022), "month": float64(6), "energy": 10.0},
					map[string]any{"year": float64(2022), "month": float64(7), "energy": 1.5},
				},
				"err_code": float64(0),
			},
		},
	}
}

func TestUsageQueryShape(t *testing.T) {
	u := NewUsage(nil, "emeter")
	u.now = func() time.Time { return july15 }

	fragment := u.Query()
	require.Contains(t, fragment, "emeter")

	commands, ok := fragment["emeter"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, commands, "get_realtime")
	assert.Equal(t, map[string]any{"year": 2022, "month": 7}, commands["get_daystat"])
	assert.Equal(t, map[string]any{"year": 2022}, commands["get_monthstat"])
}

func TestRealtimeFromUpdate(t *testing.T) {
	dev, em, proto := newEmeterDevice(t, emeterResponses())
	require.NoError(t, dev.Update(context.Background()))
	assert.Equal(t, 1, proto.CallCount())

	status, err := em.Realtime()
	require.NoError(t, err)

	power, ok := status.Power()
	require.True(t, ok)
	assert.Equal(t, 12.5, power)
}

func TestReadsBeforeUpdateFail(t *testing.T) {
	_, em, _ := newEmeterDevice(t, emeterResponses())

	_, err := em.Realtime()
	assert.ErrorIs(t, err, device.ErrNotUpdated)

	_, _, err = em.Today()
	assert.ErrorIs(t, err, device.ErrNotUpdated)
}

func TestTodayAndThisMonth(t *testing.T) {
	dev, em, _ := newEmeterDevice(t, emeterResponses())
	require.NoError(t, dev.Update(context.Background()))

	today, ok, err := em.Today()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0.5, today)

	month, ok, err := em.ThisMonth()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1.5, month)
}

func TestTodayWithoutRecord(t *testing.T) {
	responses := emeterResponses()
	responses["emeter"]["get_daystat"] = map[string]any{
		"day_list": []any{
			map[string]any{"year": float64(2022), "month": float64(7), "day": float64(1), "energy": 0.2},
		},
		"err_code": float64(0),
	}

	dev, em, _ := newEmeterDevice(t, responses)
	require.NoError(t, dev.Update(context.Background()))

	_, ok, err := em.Today()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmeterFeatures(t *testing.T) {
	dev, _, _ := newEmeterDevice(t, emeterResponses())
	require.NoError(t, dev.Update(context.Background()))

	features := dev.Features()
	require.Contains(t, features, "current_consumption")
	require.Contains(t, features, "todays_consumption")
	require.Contains(t, features, "this_months_consumption")

	power, err := features["current_consumption"].Value()
	require.NoError(t, err)
	assert.Equal(t, 12.5, power)

	today, err := features["todays_consumption"].Value()
	require.NoError(t, err)
	assert.Equal(t, 0.5, today)

	month, err := features["this_months_consumption"].Value()
	require.NoError(t, err)
	assert.Equal(t, 1.5, month)
}

func TestDayStats(t *testing.T) {
	_, em, proto := newEmeterDevice(t, emeterResponses())

	stats, err := em.DayStats(context.Background(), 2022, 7, true)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{14: 0.2, 15: 0.5}, stats)

	last := proto.LastQuery()
	require.Contains(t, last, "emeter")
	commands := last["emeter"].(map[string]any)
	assert.Equal(t, map[string]any{"year": 2022, "month": 7}, commands["get_daystat"])
}

func TestDayStatsInWh(t *testing.T) {
	_, em, _ := newEmeterDevice(t, emeterResponses())

	stats, err := em.DayStats(context.Background(), 2022, 7, false)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{14: 200.0, 15: 500.0}, stats)
}

func TestMonthStats(t *testing.T) {
	_, em, _ := newEmeterDevice(t, emeterResponses())

	stats, err := em.MonthStats(context.Background(), 2022, true)
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{6: 10.0, 7: 1.5}, stats)
}

func TestRawDayStatsDefaultsToCurrentPeriod(t *testing.T) {
	_, em, proto := newEmeterDevice(t, emeterResponses())

	_, err := em.RawDayStats(context.Background(), 0, 0)
	require.NoError(t, err)

	commands := proto.LastQuery()["emeter"].(map[string]any)
	assert.Equal(t, map[string]any{"year": 2022, "month": 7}, commands["get_daystat"])
}

func TestEraseStatsCommands(t *testing.T) {
	_, em, proto := newEmeterDevice(t, emeterResponses())

	require.NoError(t, em.EraseStats(context.Background()))
	commands := proto.LastQuery()["emeter"].(map[string]any)
	assert.Contains(t, commands, "erase_emeter_stat")

	require.NoError(t, em.Usage.EraseStats(context.Background()))
	commands = proto.LastQuery()["emeter"].(map[string]any)
	assert.Contains(t, commands, "erase_runtime_stat")
}

func TestGetRealtimeFresh(t *testing.T) {
	_, em, proto := newEmeterDevice(t, emeterResponses())

	status, err := em.GetRealtime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, proto.CallCount())

	power, ok := status.Power()
	require.True(t, ok)
	assert.Equal(t, 12.5, power)

	// err_code is stripped from single-command results.
	_, present := status["err_code"]
	assert.False(t, present)
}
