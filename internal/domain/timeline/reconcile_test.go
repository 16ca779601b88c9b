package timeline_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/okian/scorecard/internal/domain/timeline"
	. "github.com/smartystreets/goconvey/convey"
)

func ip(v int) *int { return &v }

func fp(v float64) *float64 { return &v }

func TestReconcile(t *testing.T) {
	Convey("Given a computed in-progress timeline", t, func() {
		computed := timeline.Compute("2025-01-10", "2025-02-10", date(2025, 1, 20))

		Convey("When the supplied timeline is fully well-formed", func() {
			supplied := timeline.Timeline{
				Status:          timeline.StatusCompleted,
				DaysElapsed:     ip(5),
				DaysTotal:       ip(6),
				DaysRemaining:   ip(1),
				ProgressPercent: fp(42),
			}
			got := timeline.Reconcile(computed, supplied)

			Convey("Then every supplied field wins", func() {
				So(got, ShouldResemble, supplied)
			})
		})

		Convey("When the supplied progress is NaN", func() {
			supplied := timeline.Timeline{Status: timeline.StatusInProgress, ProgressPercent: fp(math.NaN())}
			got := timeline.Reconcile(computed, supplied)

			Convey("Then the computed progress is used exactly", func() {
				So(*got.ProgressPercent, ShouldEqual, *computed.ProgressPercent)
			})
		})

		Convey("When the supplied progress is infinite", func() {
			got := timeline.Reconcile(computed, timeline.Timeline{ProgressPercent: fp(math.Inf(1))})
			So(*got.ProgressPercent, ShouldEqual, *computed.ProgressPercent)
		})

		Convey("When the supplied status is unknown", func() {
			got := timeline.Reconcile(computed, timeline.Timeline{Status: timeline.StatusUnknown, ProgressPercent: fp(42)})

			Convey("Then the computed status is used and other fields reconcile independently", func() {
				So(got.Status, ShouldEqual, timeline.StatusInProgress)
				So(*got.ProgressPercent, ShouldEqual, 42.0)
				So(*got.DaysElapsed, ShouldEqual, *computed.DaysElapsed)
				So(*got.DaysTotal, ShouldEqual, *computed.DaysTotal)
				So(*got.DaysRemaining, ShouldEqual, *computed.DaysRemaining)
			})
		})

		Convey("When the supplied status is unrecognized", func() {
			got := timeline.Reconcile(computed, timeline.Timeline{Status: "paused"})
			So(got.Status, ShouldEqual, timeline.StatusInProgress)
		})

		Convey("When no timeline is supplied", func() {
			So(timeline.ReconcilePtr(computed, nil), ShouldResemble, computed)
		})

		Convey("When reconciling, the inputs are not aliased", func() {
			supplied := timeline.Timeline{Status: timeline.StatusInProgress, DaysElapsed: ip(3)}
			got := timeline.Reconcile(computed, supplied)
			*got.DaysElapsed = 99
			*got.DaysTotal = 99

			So(*supplied.DaysElapsed, ShouldEqual, 3)
			So(*computed.DaysTotal, ShouldEqual, 31)
		})
	})

	Convey("Given a computed unknown timeline", t, func() {
		computed := timeline.Compute("", "", date(2025, 1, 20))

		Convey("When the supplied status is unknown but numbers are present", func() {
			got := timeline.Reconcile(computed, timeline.Timeline{Status: timeline.StatusUnknown, ProgressPercent: fp(12.5)})

			Convey("Then the status stays unknown and supplied numbers are kept", func() {
				So(got.Status, ShouldEqual, timeline.StatusUnknown)
				So(*got.ProgressPercent, ShouldEqual, 12.5)
				So(got.DaysElapsed, ShouldBeNil)
			})
		})

		Convey("When a valid status is supplied", func() {
			got := timeline.Reconcile(computed, timeline.Timeline{Status: timeline.StatusUpcoming})
			So(got.Status, ShouldEqual, timeline.StatusUpcoming)
		})
	})
}

func TestFallbacks(t *testing.T) {
	Convey("Given a computed timeline", t, func() {
		computed := timeline.Compute("2025-01-10", "2025-02-10", date(2025, 1, 20))

		Convey("When the supplied timeline is partially invalid", func() {
			supplied := &timeline.Timeline{Status: timeline.StatusUnknown, DaysTotal: ip(30), ProgressPercent: fp(math.NaN())}
			So(timeline.Fallbacks(computed, supplied), ShouldResemble, []string{
				timeline.FieldStatus,
				timeline.FieldDaysElapsed,
				timeline.FieldDaysRemaining,
				timeline.FieldProgressPercent,
			})
		})

		Convey("When the supplied timeline is complete", func() {
			supplied := &timeline.Timeline{Status: timeline.StatusCompleted, DaysElapsed: ip(1), DaysTotal: ip(1), DaysRemaining: ip(0), ProgressPercent: fp(100)}
			So(timeline.Fallbacks(computed, supplied), ShouldBeEmpty)
		})

		Convey("When nothing is supplied", func() {
			So(timeline.Fallbacks(computed, nil), ShouldHaveLength, 5)
		})
	})

	Convey("Given a computed unknown timeline", t, func() {
		computed := timeline.Compute("", "2025-02-10", date(2025, 1, 20))

		Convey("When nothing is supplied", func() {
			fallbacks := timeline.Fallbacks(computed, nil)

			Convey("Then status is not counted as a fallback", func() {
				So(fallbacks, ShouldNotContain, timeline.FieldStatus)
				So(fallbacks, ShouldResemble, []string{
					timeline.FieldDaysElapsed,
					timeline.FieldDaysTotal,
					timeline.FieldDaysRemaining,
					timeline.FieldProgressPercent,
				})
			})
		})
	})
}

func TestTimelineUnmarshalJSON(t *testing.T) {
	Convey("Given supplied timeline documents", t, func() {
		Convey("When every field is well-formed", func() {
			var tl timeline.Timeline
			err := json.Unmarshal([]byte(`{"status":"completed","daysElapsed":10,"daysTotal":10,"daysRemaining":0,"progressPercent":100}`), &tl)

			So(err, ShouldBeNil)
			So(tl.Status, ShouldEqual, timeline.StatusCompleted)
			So(*tl.DaysElapsed, ShouldEqual, 10)
			So(*tl.DaysRemaining, ShouldEqual, 0)
			So(*tl.ProgressPercent, ShouldEqual, 100.0)
		})

		Convey("When fields are corrupt", func() {
			var tl timeline.Timeline
			err := json.Unmarshal([]byte(`{"status":7,"daysElapsed":"x","daysTotal":12.5,"daysRemaining":true,"progressPercent":"NaN"}`), &tl)

			Convey("Then the document still decodes and bad fields are unknown", func() {
				So(err, ShouldBeNil)
				So(tl.Status, ShouldEqual, timeline.StatusUnknown)
				So(tl.DaysElapsed, ShouldBeNil)
				So(tl.DaysTotal, ShouldBeNil)
				So(tl.DaysRemaining, ShouldBeNil)
				So(tl.ProgressPercent, ShouldNotBeNil)
				So(math.IsNaN(*tl.ProgressPercent), ShouldBeTrue)
			})
		})

		Convey("When numbers arrive as strings", func() {
			var tl timeline.Timeline
			err := json.Unmarshal([]byte(`{"status":"in_progress","daysElapsed":"4","progressPercent":"42"}`), &tl)

			So(err, ShouldBeNil)
			So(*tl.DaysElapsed, ShouldEqual, 4)
			So(*tl.ProgressPercent, ShouldEqual, 42.0)
			So(tl.DaysTotal, ShouldBeNil)
		})

		Convey("When the document is not an object", func() {
			var tl timeline.Timeline
			So(json.Unmarshal([]byte(`[1,2]`), &tl), ShouldNotBeNil)
		})

		Convey("When the reconciled timeline is encoded", func() {
			computed := timeline.Compute("", "", date(2025, 1, 20))
			out, err := json.Marshal(computed)

			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `{"status":"unknown","daysElapsed":null,"daysTotal":null,"daysRemaining":null,"progressPercent":null}`)
		})
	})
}
