package main

import (
	"reflect"
	"testing"

	"github.com/milk9111/flappy/sim"
)

func TestParseSchedule(t *testing.T) {
	cases := []struct {
		in      string
		want    sim.Schedule
		wantErr bool
	}{
		{"0", sim.Schedule{0: {sim.EventJump}}, false},
		{"0, 12,30", sim.Schedule{0: {sim.EventJump}, 12: {sim.EventJump}, 30: {sim.EventJump}}, false},
		{"5,5", sim.Schedule{5: {sim.EventJump, sim.EventJump}}, false},
		{"3,,", sim.Schedule{3: {sim.EventJump}}, false},
		{"x", nil, true},
		{"-1", nil, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseSchedule(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %t", err, c.wantErr)
			}
			if !c.wantErr && !reflect.DeepEqual(got, c.want) {
				t.Fatalf("schedule = %v, want %v", got, c.want)
			}
		})
	}
}
