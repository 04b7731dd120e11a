package course_test

import (
	"math"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/lmsadmin/core"
	"github.com/trezcool/lmsadmin/core/course"
	"github.com/trezcool/lmsadmin/testutil"
)

func TestNewCourse_Validate(t *testing.T) {
	validate, translator := testutil.NewValidator()

	valid := func() course.NewCourse {
		return course.NewCourse{LMSID: 1, Title: "Intro", Slug: "intro-to-go"}
	}

	tests := []struct {
		name      string
		mutate    func(nc *course.NewCourse)
		wantField string
	}{
		{name: "valid"},
		{name: "bad slug", mutate: func(nc *course.NewCourse) { nc.Slug = "Intro To Go" }, wantField: "slug"},
		{name: "slug with slash", mutate: func(nc *course.NewCourse) { nc.Slug = "intro/go" }, wantField: "slug"},
		{name: "mixed case slug", mutate: func(nc *course.NewCourse) { nc.Slug = "Intro_101" }},
		{name: "zero duration", mutate: func(nc *course.NewCourse) { nc.DurationHours = null.Float64From(0) }, wantField: "duration_hours"},
		{name: "three decimals", mutate: func(nc *course.NewCourse) { nc.DurationHours = null.Float64From(1.125) }, wantField: "duration_hours"},
		{name: "negative duration", mutate: func(nc *course.NewCourse) { nc.DurationHours = null.Float64From(-2) }, wantField: "duration_hours"},
		{name: "duration overflow", mutate: func(nc *course.NewCourse) { nc.DurationHours = null.Float64From(10000) }, wantField: "duration_hours"},
		{name: "two decimals", mutate: func(nc *course.NewCourse) { nc.DurationHours = null.Float64From(9999.99) }},
		{name: "unknown status", mutate: func(nc *course.NewCourse) { nc.Status = "deleted" }, wantField: "status"},
		{name: "bad thumbnail", mutate: func(nc *course.NewCourse) { nc.ThumbnailURL = null.StringFrom("not a url") }, wantField: "thumbnail_url"},
		{name: "blank title", mutate: func(nc *course.NewCourse) { nc.Title = " " }, wantField: "title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nc := valid()
			if tt.mutate != nil {
				tt.mutate(&nc)
			}
			err := nc.Validate(validate)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, course.StatusDraft, nc.Status)
				if tt.mutate != nil {
					want := valid()
					tt.mutate(&want)
					assert.Equal(t, want.Slug, nc.Slug)
				}
				return
			}
			require.Error(t, err)
			fields := core.TranslateErrors(err.(validator.ValidationErrors), translator)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestNewModule_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	tests := []struct {
		name    string
		order   *int
		wantErr bool
	}{
		{name: "no order", wantErr: true},
		{name: "negative", order: testutil.IntPtr(-1), wantErr: true},
		{name: "zero", order: testutil.IntPtr(0)},
		{name: "max int32", order: testutil.IntPtr(math.MaxInt32)},
		{name: "int32 overflow", order: testutil.IntPtr(math.MaxInt32 + 1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nm := course.NewModule{CourseID: 1, Title: "Module", Order: tt.order}
			err := nm.Validate(validate)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLesson_Validate(t *testing.T) {
	validate, _ := testutil.NewValidator()

	overflow := course.NewLesson{ModuleID: 1, Title: "Big", Type: course.LessonTypeText, Order: testutil.IntPtr(math.MaxInt32 + 1)}
	assert.Error(t, overflow.Validate(validate))

	nl := course.NewLesson{ModuleID: 1, Title: "Watch", Type: "VIDEO", Order: testutil.IntPtr(0)}
	require.NoError(t, nl.Validate(validate))
	assert.Equal(t, course.LessonTypeVideo, nl.Type)

	nl = course.NewLesson{ModuleID: 1, Title: "Play", Type: "game", Order: testutil.IntPtr(0)}
	assert.Error(t, nl.Validate(validate))
}
