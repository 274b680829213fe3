package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/overlay/internal/core/ports/mocks"
	"go.trai.ch/overlay/internal/engine/router"
	"go.uber.org/mock/gomock"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		current map[string]string
		partial string
		want    string
	}{
		{
			name:    "bare entry point passes through",
			current: map[string]string{"option": "com_foo", "view": "cpanel"},
			partial: "index.php",
			want:    "index.php",
		},
		{
			name:    "entry point with question mark passes through",
			current: map[string]string{"option": "com_foo"},
			partial: "  index.php?  ",
			want:    "index.php?",
		},
		{
			name:    "sticky option carried when view and layout given",
			current: map[string]string{"option": "com_foo", "view": "cpanel"},
			partial: "view=categories&layout=tree",
			want:    "index.php?option=com_foo&view=categories&layout=tree",
		},
		{
			name:    "entry prefix is stripped",
			current: map[string]string{"option": "com_foo", "view": "cpanel"},
			partial: "index.php?view=categories",
			want:    "index.php?option=com_foo&view=categories",
		},
		{
			name:    "view and layout carried together",
			current: map[string]string{"option": "com_foo", "view": "items", "layout": "edit"},
			partial: "task=save",
			want:    "index.php?option=com_foo&view=items&layout=edit&task=save",
		},
		{
			name:    "layout not carried without view",
			current: map[string]string{"option": "com_foo", "layout": "edit"},
			partial: "task=save",
			want:    "index.php?option=com_foo&task=save",
		},
		{
			name:    "layout not carried when view is given",
			current: map[string]string{"option": "com_foo", "view": "items", "layout": "edit"},
			partial: "view=item",
			want:    "index.php?option=com_foo&view=item",
		},
		{
			name:    "explicit layout wins over carried one",
			current: map[string]string{"option": "com_foo", "view": "items", "layout": "edit"},
			partial: "layout=modal",
			want:    "index.php?option=com_foo&view=items&layout=modal",
		},
		{
			name:    "non-html format carried",
			current: map[string]string{"option": "com_foo", "format": "json"},
			partial: "task=list",
			want:    "index.php?option=com_foo&format=json&task=list",
		},
		{
			name:    "html format dropped",
			current: map[string]string{"option": "com_foo", "format": "html"},
			partial: "task=list",
			want:    "index.php?option=com_foo&task=list",
		},
		{
			name:    "explicit empty option is kept",
			current: map[string]string{"option": "com_foo"},
			partial: "option=&x=1",
			want:    "index.php?option=&x=1",
		},
		{
			name:    "empty partial carries only sticky keys",
			current: map[string]string{"option": "com_foo", "view": "cpanel", "id": "3"},
			partial: "",
			want:    "index.php?option=com_foo&view=cpanel",
		},
		{
			name:    "carried values are escaped",
			current: map[string]string{"option": "com_foo", "view": "a b&c"},
			partial: "x=1",
			want:    "index.php?option=com_foo&view=a+b%26c&x=1",
		},
		{
			name:    "explicit view with semicolon is not duplicated",
			current: map[string]string{"option": "com_foo", "view": "cpanel"},
			partial: "view=a;b",
			want:    "index.php?option=com_foo&view=a;b",
		},
		{
			name:    "explicit view with bad escape is not duplicated",
			current: map[string]string{"option": "com_foo", "view": "cpanel"},
			partial: "view=%zz",
			want:    "index.php?option=com_foo&view=%zz",
		},
		{
			name:    "escaped key counts as present",
			current: map[string]string{"option": "com_foo"},
			partial: "opt%69on=com_bar",
			want:    "index.php?opt%69on=com_bar",
		},
		{
			name:    "empty current query",
			current: nil,
			partial: "option=com_bar",
			want:    "index.php?option=com_bar",
		},
		{
			name:    "ampersand merges over current query",
			current: map[string]string{"option": "com_foo", "view": "cpanel"},
			partial: "&view=items&limit=20",
			want:    "index.php?limit=20&option=com_foo&view=items",
		},
		{
			name:    "ampersand keeps non-sticky current keys",
			current: map[string]string{"option": "com_foo", "id": "7"},
			partial: "&task=edit",
			want:    "index.php?id=7&option=com_foo&task=edit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.Merge(tt.current, tt.partial))
		})
	}
}

func TestRouter_Route(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mocks.NewMockURLState(ctrl)
	state.EXPECT().Query().Return(map[string]string{"option": "com_foo", "view": "cpanel"}).AnyTimes()
	state.EXPECT().
		Normalize("index.php?option=com_foo&view=categories").
		Return("/component/foo/categories")

	r := router.New(state)

	assert.Equal(t, "/component/foo/categories", r.Route("view=categories"))
}

func TestRouter_Route_PassthroughSkipsNormalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := mocks.NewMockURLState(ctrl)
	state.EXPECT().Query().Return(map[string]string{"option": "com_foo"})

	r := router.New(state)

	assert.Equal(t, "index.php", r.Route(" index.php "))
}
