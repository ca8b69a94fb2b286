package usecase

import (
	"context"
	"time"

	"github.com/runoshun/classclock/internal/domain"
)

// ShowScheduleInput contains the parameters for showing a schedule.
type ShowScheduleInput struct {
	Date time.Time // Day to generate; zero means today
}

// ShowScheduleOutput contains the generated schedule.
type ShowScheduleOutput struct {
	Date     time.Time
	Schedule domain.Schedule
	Class    domain.DayClass
	Weekday  int
}

// ShowSchedule generates the schedule for one day.
type ShowSchedule struct {
	clock domain.Clock
}

// NewShowSchedule creates a new ShowSchedule use case.
func NewShowSchedule(clock domain.Clock) *ShowSchedule {
	return &ShowSchedule{clock: clock}
}

// Execute generates the schedule for in.Date.
func (uc *ShowSchedule) Execute(_ context.Context, in ShowScheduleInput) (*ShowScheduleOutput, error) {
	date := in.Date
	if date.IsZero() {
		date = uc.clock.Now()
	}
	date = domain.Truncate(date, domain.GranularityDay)

	weekday := domain.ISOWeekday(date)
	schedule := domain.GenerateSchedule(date)
	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return &ShowScheduleOutput{
		Date:     date,
		Weekday:  weekday,
		Class:    domain.ClassifyWeekday(weekday),
		Schedule: schedule,
	}, nil
}
