// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"
)

func TestNew_defaults(t *testing.T) {
	c := New()

	if c.MinTm != 50.0 || c.MaxTm != 75.0 {
		t.Errorf("config.New() Tm window = [%v, %v], want [50, 75]", c.MinTm, c.MaxTm)
	}

	if c.MaxTmDiff != 5.0 {
		t.Errorf("config.New() MaxTmDiff = %v, want 5", c.MaxTmDiff)
	}

	if c.ClosestOnly || c.NTerminalFusion || c.CTerminalFusion {
		t.Error("config.New() pairing/fusion flags should default to false")
	}

	if c.Cation != 50.0 || c.Magnesium != 1.5 || c.DNTP != 0.2 || c.Primer != 200.0 {
		t.Errorf(
			"config.New() conditions = %v mM cation, %v mM Mg2+, %v mM dNTP, %v nM primer",
			c.Cation, c.Magnesium, c.DNTP, c.Primer,
		)
	}

	if c.LineWidth != 60 {
		t.Errorf("config.New() LineWidth = %v, want 60", c.LineWidth)
	}
}
