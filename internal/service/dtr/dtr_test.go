package dtr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCoversDayRange(t *testing.T) {
	records := Aggregate(nil, 3, 9)

	require.Len(t, records, 7)
	for i, record := range records {
		assert.Equal(t, 3+i, record.Day)
		assert.Empty(t, record.AMIn)
		assert.Empty(t, record.AMOut)
		assert.Empty(t, record.PMIn)
		assert.Empty(t, record.PMOut)
		assert.Empty(t, record.TotalHours)
	}
}

func TestAggregateFullDay(t *testing.T) {
	events := []Event{
		{Day: 5, Time: "08:00:00", State: "check in"},
		{Day: 5, Time: "12:00:00", State: "check out"},
		{Day: 5, Time: "13:00:00", State: "check in"},
		{Day: 5, Time: "17:00:00", State: "check out"},
	}

	records := Aggregate(events, 1, 15)

	require.Len(t, records, 15)
	record := records[4]
	assert.Equal(t, 5, record.Day)
	assert.Equal(t, "08:00", record.AMIn)
	assert.Equal(t, "12:00", record.AMOut)
	assert.Equal(t, "13:00", record.PMIn)
	assert.Equal(t, "17:00", record.PMOut)
	assert.Equal(t, "8.0", record.TotalHours)
}

func TestAggregateUnpairedIn(t *testing.T) {
	events := []Event{
		{Day: 2, Time: "08:00:00", State: "check in"},
	}

	records := Aggregate(events, 1, 5)

	record := records[1]
	assert.Equal(t, "08:00", record.AMIn)
	assert.Empty(t, record.AMOut)
	// An incomplete pair contributes zero, which renders empty.
	assert.Empty(t, record.TotalHours)
}

func TestAggregateFirstInWins(t *testing.T) {
	events := []Event{
		{Day: 1, Time: "08:15:00", State: "in"},
		{Day: 1, Time: "08:00:00", State: "in"},
	}

	records := Aggregate(events, 1, 1)

	assert.Equal(t, "08:00", records[0].AMIn)
}

func TestAggregateLastOutWins(t *testing.T) {
	events := []Event{
		{Day: 1, Time: "11:00:00", State: "out"},
		{Day: 1, Time: "12:00:00", State: "out"},
	}

	records := Aggregate(events, 1, 1)

	assert.Equal(t, "12:00", records[0].AMOut)
}

func TestAggregateNoonBoundary(t *testing.T) {
	events := []Event{
		{Day: 1, Time: "08:00:00", State: "check in"},
		{Day: 1, Time: "12:00:30", State: "check out"},
	}

	records := Aggregate(events, 1, 1)

	// Only a punch at exactly 12:00:00 belongs to the morning half.
	record := records[0]
	assert.Equal(t, "08:00", record.AMIn)
	assert.Empty(t, record.AMOut)
	assert.Equal(t, "12:00", record.PMOut)
}

func TestAggregateEventsOutsideRangeIgnored(t *testing.T) {
	events := []Event{
		{Day: 20, Time: "08:00:00", State: "check in"},
		{Day: 20, Time: "17:00:00", State: "check out"},
	}

	records := Aggregate(events, 1, 15)

	for _, record := range records {
		assert.Empty(t, record.AMIn)
		assert.Empty(t, record.PMOut)
	}
}

func TestAggregateUnsortedInput(t *testing.T) {
	events := []Event{
		{Day: 7, Time: "17:30:00", State: "check out"},
		{Day: 7, Time: "08:30:00", State: "check in"},
		{Day: 7, Time: "12:00:00", State: "check out"},
		{Day: 7, Time: "13:30:00", State: "check in"},
	}

	records := Aggregate(events, 7, 7)

	record := records[0]
	assert.Equal(t, "08:30", record.AMIn)
	assert.Equal(t, "12:00", record.AMOut)
	assert.Equal(t, "13:30", record.PMIn)
	assert.Equal(t, "17:30", record.PMOut)
	assert.Equal(t, "7.5", record.TotalHours)
}

func TestAggregateAmbiguousStateDropped(t *testing.T) {
	events := []Event{
		{Day: 1, Time: "08:00:00", State: "break"},
		{Day: 1, Time: "09:00:00", State: "check in"},
	}

	records := Aggregate(events, 1, 1)

	assert.Equal(t, "09:00", records[0].AMIn)
	assert.Empty(t, records[0].AMOut)
}

func TestAggregateMalformedTimeSkipped(t *testing.T) {
	events := []Event{
		{Day: 1, Time: "xx:00:00", State: "check in"},
		{Day: 1, Time: "09:00:00", State: "check in"},
	}

	records := Aggregate(events, 1, 1)

	assert.Equal(t, "09:00", records[0].AMIn)
}

func TestAggregateIdempotent(t *testing.T) {
	events := []Event{
		{Day: 3, Time: "17:00:00", State: "check out"},
		{Day: 3, Time: "08:00:00", State: "check in"},
	}

	first := Aggregate(events, 1, 10)
	second := Aggregate(events, 1, 10)

	assert.Equal(t, first, second)

	// The input slice order is left untouched.
	assert.Equal(t, "17:00:00", events[0].Time)
	assert.Equal(t, "08:00:00", events[1].Time)
}

func TestResolvePeriod(t *testing.T) {
	start, end, err := ResolvePeriod(2024, time.February, PeriodWholeMonth)
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 29, end)

	start, end, err = ResolvePeriod(2023, time.February, PeriodWholeMonth)
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 28, end)

	start, end, err = ResolvePeriod(2024, time.April, PeriodFirstHalf)
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 15, end)

	start, end, err = ResolvePeriod(2024, time.April, PeriodSecondHalf)
	require.NoError(t, err)
	assert.Equal(t, 16, start)
	assert.Equal(t, 30, end)

	_, _, err = ResolvePeriod(2024, time.April, 9)
	assert.Error(t, err)
}
