package preference_test

import (
	"testing"

	"github.com/mentormesh/matchd/internal/domain/model"
	"github.com/mentormesh/matchd/internal/domain/preference"
	"github.com/mentormesh/matchd/internal/domain/survey"
	"github.com/smartystreets/goconvey/convey"
)

func TestTopInterestRule(t *testing.T) {
	convey.Convey("Given an adjuster over the default questionnaire", t, func() {
		a := preference.New(survey.Default())

		convey.Convey("When the mentee's top choice sits in the mentor's top three", func() {
			mentor := model.Answers{
				"career.ranking": model.Ranking("Data Science", "Cybersecurity", "AI/ML", "Other"),
			}
			mentee := model.Answers{
				"career.ranking": model.Ranking("AI/ML", "Web Development"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then the top-interest bonus fires with the option named", func() {
				convey.So(adj.Bonus, convey.ShouldBeGreaterThanOrEqualTo, 1.0)
				convey.So(adj.BonusReasons, convey.ShouldContain,
					"Mentor expertise aligns with mentee's top interest: AI/ML")
			})
		})

		convey.Convey("When the mentee's top choice is outside the mentor's top three", func() {
			mentor := model.Answers{
				"career.ranking": model.Ranking("Data Science", "Cybersecurity", "Other", "AI/ML"),
			}
			mentee := model.Answers{
				"career.ranking": model.Ranking("AI/ML"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then the top-interest bonus does not fire", func() {
				convey.So(adj.BonusReasons, convey.ShouldNotContain,
					"Mentor expertise aligns with mentee's top interest: AI/ML")
			})
		})

		convey.Convey("When either ranking is missing", func() {
			mentee := model.Answers{
				"career.ranking": model.Ranking("AI/ML"),
			}
			adj := a.Adjust(model.Answers{}, mentee)

			convey.Convey("Then no ranking rule fires", func() {
				convey.So(adj.Bonus, convey.ShouldEqual, 0.0)
			})
		})
	})
}

func TestSharedTopTwoRule(t *testing.T) {
	convey.Convey("Given an adjuster over the default questionnaire", t, func() {
		a := preference.New(survey.Default())

		convey.Convey("When both top-two sets share one option", func() {
			mentor := model.Answers{
				"career.ranking": model.Ranking("Cybersecurity", "Data Science", "Other"),
			}
			mentee := model.Answers{
				"career.ranking": model.Ranking("Data Science", "Web Development"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then the shared-interest bonus lists the overlap", func() {
				convey.So(adj.BonusReasons, convey.ShouldContain, "Shared top interests: Data Science")
			})
		})

		convey.Convey("When both top-two sets share both options", func() {
			mentor := model.Answers{
				"career.ranking": model.Ranking("AI/ML", "Data Science", "Other"),
			}
			mentee := model.Answers{
				"career.ranking": model.Ranking("AI/ML", "Data Science"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then both are named in the mentee's order", func() {
				convey.So(adj.BonusReasons, convey.ShouldContain, "Shared top interests: AI/ML, Data Science")
			})
		})

		convey.Convey("When the top-two sets are disjoint", func() {
			mentor := model.Answers{
				"career.ranking": model.Ranking("Cybersecurity", "Other"),
			}
			mentee := model.Answers{
				"career.ranking": model.Ranking("Data Science", "Web Development"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.So(adj.Bonus, convey.ShouldEqual, 0.0)
		})
	})
}

func TestGrowthRule(t *testing.T) {
	convey.Convey("Given an adjuster over the default questionnaire", t, func() {
		a := preference.New(survey.Default())

		convey.Convey("When the mentor outrates the mentee at 4+ on two questions", func() {
			mentor := model.Answers{
				"reflection.planning": model.Rating(5),
				"reflection.empathy":  model.Rating(4),
				"reflection.feedback": model.Rating(3),
			}
			mentee := model.Answers{
				"reflection.planning": model.Rating(2),
				"reflection.empathy":  model.Rating(3),
				"reflection.feedback": model.Rating(3),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then the growth bonus fires", func() {
				convey.So(adj.BonusReasons, convey.ShouldContain,
					"Strong growth potential - mentor excels in multiple areas")
			})
		})

		convey.Convey("When only one question shows a growth opportunity", func() {
			mentor := model.Answers{
				"reflection.planning": model.Rating(5),
				"reflection.empathy":  model.Rating(3),
			}
			mentee := model.Answers{
				"reflection.planning": model.Rating(2),
				"reflection.empathy":  model.Rating(3),
			}
			adj := a.Adjust(mentor, mentee)

			convey.So(adj.Bonus, convey.ShouldEqual, 0.0)
		})

		convey.Convey("When the mentor leads but below the rating threshold", func() {
			mentor := model.Answers{
				"reflection.planning": model.Rating(3),
				"reflection.empathy":  model.Rating(3),
			}
			mentee := model.Answers{
				"reflection.planning": model.Rating(1),
				"reflection.empathy":  model.Rating(1),
			}
			adj := a.Adjust(mentor, mentee)

			convey.So(adj.Bonus, convey.ShouldEqual, 0.0)
		})

		convey.Convey("When the mentee left the rating questions unanswered", func() {
			mentor := model.Answers{
				"reflection.planning": model.Rating(5),
				"reflection.empathy":  model.Rating(5),
			}
			adj := a.Adjust(mentor, model.Answers{})

			convey.Convey("Then unanswered questions do not count as opportunities", func() {
				convey.So(adj.Bonus, convey.ShouldEqual, 0.0)
			})
		})
	})
}

func TestLifestyleRule(t *testing.T) {
	convey.Convey("Given an adjuster over the default questionnaire", t, func() {
		a := preference.New(survey.Default())

		convey.Convey("When both sides hit two themes in their open text", func() {
			mentor := model.Answers{
				"vibe.hobby": model.Text("hiking in nature and gaming at night"),
			}
			mentee := model.Answers{
				"vibe.friday_night": model.Text("camping trips"),
				"vibe.hobby":        model.Text("coding side projects"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then the lifestyle bonus names the shared themes", func() {
				convey.So(adj.BonusReasons, convey.ShouldContain, "Similar lifestyle themes: tech, outdoors")
			})
		})

		convey.Convey("When only one theme is shared", func() {
			mentor := model.Answers{
				"vibe.hobby": model.Text("gaming"),
			}
			mentee := model.Answers{
				"vibe.hobby": model.Text("video games"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.So(adj.Bonus, convey.ShouldEqual, 0.0)
		})
	})
}

func TestEnergyRule(t *testing.T) {
	convey.Convey("Given an adjuster over the default questionnaire", t, func() {
		a := preference.New(survey.Default())

		convey.Convey("When one side is all high energy and the other all low", func() {
			mentor := model.Answers{
				"vibe.physical_activity": model.Text("gym, running, sports every day"),
			}
			mentee := model.Answers{
				"vibe.friday_night": model.Text("staying in, relax at home, quiet reading"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then the energy mismatch penalty fires", func() {
				convey.So(adj.Penalty, convey.ShouldAlmostEqual, 0.3)
				convey.So(adj.PenaltyReasons, convey.ShouldContain, "Different energy/activity levels")
			})
		})

		convey.Convey("When neither side hits any energy keyword", func() {
			adj := a.Adjust(model.Answers{}, model.Answers{})

			convey.Convey("Then both default to neutral and no penalty fires", func() {
				convey.So(adj.Penalty, convey.ShouldEqual, 0.0)
			})
		})
	})
}

func TestMutualUncertaintyRule(t *testing.T) {
	convey.Convey("Given an adjuster over the default questionnaire", t, func() {
		a := preference.New(survey.Default())

		convey.Convey("When both rank Undecisive first", func() {
			mentor := model.Answers{
				"career.ranking": model.Ranking("Undecisive", "Other"),
			}
			mentee := model.Answers{
				"career.ranking": model.Ranking("Undecisive", "AI/ML"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.Convey("Then the uncertainty penalty fires", func() {
				convey.So(adj.Penalty, convey.ShouldAlmostEqual, 0.2)
				convey.So(adj.PenaltyReasons, convey.ShouldContain, "Both uncertain about career direction")
			})
		})

		convey.Convey("When only one side is undecided", func() {
			mentor := model.Answers{
				"career.ranking": model.Ranking("Undecisive", "Other"),
			}
			mentee := model.Answers{
				"career.ranking": model.Ranking("AI/ML", "Undecisive"),
			}
			adj := a.Adjust(mentor, mentee)

			convey.So(adj.PenaltyReasons, convey.ShouldNotContain, "Both uncertain about career direction")
		})
	})
}

func TestEnergyLevel(t *testing.T) {
	convey.Convey("Given an adjuster over the default questionnaire", t, func() {
		a := preference.New(survey.Default())

		convey.Convey("When the text hits only high-energy keywords", func() {
			level := a.EnergyLevel(model.Answers{
				"vibe.hobby": model.Text("running and gym sessions"),
			})

			convey.So(level, convey.ShouldEqual, 1.0)
		})

		convey.Convey("When the text hits only low-energy keywords", func() {
			level := a.EnergyLevel(model.Answers{
				"vibe.friday_night": model.Text("staying in and relax"),
			})

			convey.So(level, convey.ShouldEqual, 0.0)
		})

		convey.Convey("When the text hits neither list", func() {
			level := a.EnergyLevel(model.Answers{
				"vibe.hobby": model.Text("painting miniatures"),
			})

			convey.So(level, convey.ShouldEqual, 0.5)
		})
	})
}
