package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	service "github.com/okian/scorecard/internal/app"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/timeline"
	"github.com/okian/scorecard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func intPtr(v int) *int { return &v }

func newService(opts ...service.Option) (*service.Service, *clock.Mock) {
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
	svc, err := service.New(append([]service.Option{service.WithClock(mock)}, opts...)...)
	So(err, ShouldBeNil)
	return svc, mock
}

func ids[T any](items []T, id func(T) model.ID) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = string(id(it))
	}
	return out
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc, err := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(err, ShouldBeNil)
			stats := svc.GetStats()
			So(stats["maxItems"], ShouldEqual, 10_000)
			So(stats["weightingDimensions"], ShouldResemble, []string{"grades", "competitions"})
			So(stats["statusOrder"], ShouldResemble, []string{"in_progress", "upcoming", "completed", "unknown"})
		})
	})

	Convey("Given an unknown default dimension", t, func() {
		svc, err := service.New(service.WithWeightingDimensions("grades", "referees"))

		Convey("Then construction fails", func() {
			So(svc, ShouldBeNil)
			So(errors.Is(err, service.ErrUnknownDimension), ShouldBeTrue)
		})
	})

	Convey("Given dimensions in mixed case with repeats", t, func() {
		svc, err := service.New(service.WithWeightingDimensions(" Teams", "clubs", "teams"))

		Convey("Then they are normalized", func() {
			So(err, ShouldBeNil)
			So(svc.GetStats()["weightingDimensions"], ShouldResemble, []string{"teams", "clubs"})
		})
	})
}

func TestService_Timeline(t *testing.T) {
	Convey("Given a service at 2025-01-20", t, func() {
		svc, mock := newService()
		ctx := context.Background()

		Convey("When no timeline is supplied", func() {
			tl := svc.Timeline(ctx, "2025-01-10", "2025-02-10", nil)

			Convey("Then the computed timeline is returned", func() {
				So(tl.Status, ShouldEqual, timeline.StatusInProgress)
				So(*tl.DaysElapsed, ShouldEqual, 10)
				So(*tl.DaysRemaining, ShouldEqual, 21)
			})
		})

		Convey("When a partial timeline is supplied", func() {
			progress := 55.0
			supplied := &timeline.Timeline{Status: timeline.StatusUnknown, ProgressPercent: &progress}
			tl := svc.Timeline(ctx, "2025-01-10", "2025-02-10", supplied)

			Convey("Then supplied fields win and gaps are filled", func() {
				So(tl.Status, ShouldEqual, timeline.StatusInProgress)
				So(*tl.ProgressPercent, ShouldEqual, 55.0)
				So(*tl.DaysTotal, ShouldEqual, 31)
			})
		})

		Convey("When the clock moves", func() {
			mock.Set(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
			tl := svc.Timeline(ctx, "2025-01-10", "2025-02-10", nil)

			Convey("Then the new instant is used", func() {
				So(tl.Status, ShouldEqual, timeline.StatusCompleted)
				So(svc.GetStats()["timelinesDerived"], ShouldEqual, int64(1))
			})
		})
	})
}

func TestService_Competitions(t *testing.T) {
	Convey("Given competitions in every phase", t, func() {
		svc, _ := newService()
		ctx := context.Background()
		in := []model.Competition{
			{ID: "1", StartDate: "2025-01-01", EndDate: "2025-12-31"},
			{ID: "2", StartDate: "", EndDate: ""},
			{ID: "3", StartDate: "2025-06-01", EndDate: "2025-08-01"},
			{ID: "4", StartDate: "2024-01-01", EndDate: "2024-06-01"},
			{ID: "5", StartDate: "2025-02-01", EndDate: "2025-03-01",
				Timeline: &timeline.Timeline{Status: timeline.StatusCompleted}},
		}

		Convey("When they are ordered", func() {
			out, err := svc.Competitions(ctx, in)

			Convey("Then active come first, then upcoming, completed and unknown", func() {
				So(err, ShouldBeNil)
				So(ids(out, func(c model.CompetitionView) model.ID { return c.ID }), ShouldResemble,
					[]string{"1", "3", "4", "5", "2"})
			})

			Convey("And supplied statuses are kept", func() {
				So(out[3].Timeline.Status, ShouldEqual, timeline.StatusCompleted)
				So(*out[3].Timeline.DaysTotal, ShouldEqual, 28)
			})

			Convey("And the input is left untouched", func() {
				So(in[0].ID, ShouldEqual, model.ID("1"))
				So(in[4].Timeline.DaysTotal, ShouldBeNil)
			})
		})

		Convey("When upcoming competitions are configured first", func() {
			svc, _ := newService(service.WithStatusOrder(timeline.UpcomingFirst))
			out, err := svc.Competitions(ctx, in)

			Convey("Then upcoming competitions lead", func() {
				So(err, ShouldBeNil)
				So(ids(out, func(c model.CompetitionView) model.ID { return c.ID }), ShouldResemble,
					[]string{"3", "1", "4", "5", "2"})
			})
		})
	})

	Convey("Given more competitions than allowed", t, func() {
		svc, _ := newService(service.WithMaxItems(2))
		_, err := svc.Competitions(context.Background(), make([]model.Competition, 3))

		Convey("Then the request is rejected", func() {
			So(errors.Is(err, service.ErrTooManyItems), ShouldBeTrue)
			So(svc.GetStats()["requestsRejected"], ShouldEqual, int64(1))
		})
	})

	Convey("Given a cancelled context", t, func() {
		svc, _ := newService()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := svc.Competitions(ctx, nil)

		Convey("Then the context error is returned", func() {
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestService_Clubs(t *testing.T) {
	Convey("Given clubs with and without team counts", t, func() {
		svc, _ := newService()
		out, err := svc.Clubs(context.Background(), []model.Club{
			{ID: "a", Name: "Rovers", TeamCount: intPtr(4)},
			{ID: "b", Name: "albion", TeamCount: nil},
			{ID: "c", Name: "Athletic", TeamCount: intPtr(9)},
			{ID: "d", Name: "Albion", TeamCount: intPtr(4)},
		})

		Convey("Then larger clubs lead and names break ties", func() {
			So(err, ShouldBeNil)
			So(ids(out, func(c model.Club) model.ID { return c.ID }), ShouldResemble, []string{"c", "d", "a", "b"})
			So(svc.GetStats()["clubsOrdered"], ShouldEqual, int64(1))
		})
	})

	Convey("Given no clubs", t, func() {
		svc, _ := newService()
		out, err := svc.Clubs(context.Background(), nil)

		Convey("Then an empty, non-nil list is returned", func() {
			So(err, ShouldBeNil)
			So(out, ShouldNotBeNil)
			So(out, ShouldBeEmpty)
		})
	})
}

func TestService_Accounts(t *testing.T) {
	Convey("Given accounts sharing names", t, func() {
		svc, _ := newService()
		out, err := svc.Accounts(context.Background(), []model.Account{
			{ID: "10", FirstName: "Sam", LastName: "lee"},
			{ID: "2", FirstName: "Sam", LastName: "Lee"},
			{ID: "7", FirstName: "Alex", LastName: "Lee"},
			{ID: "1", FirstName: "Zoe", LastName: "Adams"},
		})

		Convey("Then they sort by last name, first name and numeric id", func() {
			So(err, ShouldBeNil)
			So(ids(out, func(a model.Account) model.ID { return a.ID }), ShouldResemble, []string{"1", "7", "2", "10"})
		})
	})
}

func TestService_Associations(t *testing.T) {
	Convey("Given associations", t, func() {
		svc, _ := newService()
		ctx := context.Background()
		in := []model.Association{
			{ID: "a", Name: "North", TeamCount: intPtr(10), GradeCount: intPtr(10), CompetitionCount: intPtr(2)},
			{ID: "b", Name: "South", TeamCount: intPtr(40), GradeCount: intPtr(10), CompetitionCount: intPtr(8)},
			{ID: "c", Name: "East", TeamCount: intPtr(20), GradeCount: intPtr(5), CompetitionCount: intPtr(8)},
			{ID: "d", Name: "West", TeamCount: nil, GradeCount: intPtr(1), CompetitionCount: intPtr(1)},
		}

		Convey("When ranked with the default dimensions", func() {
			out, err := svc.Associations(ctx, in, nil)

			Convey("Then they are ordered by team count and weighted", func() {
				So(err, ShouldBeNil)
				So(ids(out, func(a model.AssociationView) model.ID { return a.ID }), ShouldResemble, []string{"b", "c", "a", "d"})
				So(out[0].Percentiles, ShouldResemble, map[string]int{"grades": 100, "competitions": 100})
				So(out[0].CombinedWeighting, ShouldEqual, 100)
				So(out[1].CombinedWeighting, ShouldEqual, 75)
				So(out[2].CombinedWeighting, ShouldEqual, 75)
				So(out[3].CombinedWeighting, ShouldEqual, 25)
			})
		})

		Convey("When ranked by teams", func() {
			out, err := svc.Associations(ctx, in, []string{"teams"})

			Convey("Then an absent team count weighs as zero", func() {
				So(err, ShouldBeNil)
				So(out[3].Percentiles, ShouldResemble, map[string]int{"teams": 25})
				So(out[0].Percentiles, ShouldResemble, map[string]int{"teams": 100})
			})
		})

		Convey("When an unknown dimension is requested", func() {
			out, err := svc.Associations(ctx, in, []string{"referees"})

			Convey("Then the request is rejected", func() {
				So(out, ShouldBeNil)
				So(errors.Is(err, service.ErrUnknownDimension), ShouldBeTrue)
			})
		})
	})
}
