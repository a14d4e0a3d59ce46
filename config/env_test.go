package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAdminEmails(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "defaults",
			raw:  defaultAdminEmails,
			want: []string{
				"farida@flexdesign.com",
				"admin1@flexdesign.com",
				"admin2@flexdesign.com",
				"supervisor@flexdesign.com",
			},
		},
		{
			name: "trims and lowercases",
			raw:  " Farida@FlexDesign.com , admin1@flexdesign.com ",
			want: []string{"farida@flexdesign.com", "admin1@flexdesign.com"},
		},
		{
			name: "skips empty entries",
			raw:  "farida@flexdesign.com,,  ,admin1@flexdesign.com",
			want: []string{"farida@flexdesign.com", "admin1@flexdesign.com"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseAdminEmails(tt.raw))
		})
	}
}
