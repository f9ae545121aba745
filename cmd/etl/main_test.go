package main

import (
	"context"
	"errors"
	"testing"

	"github.com/couchcryptid/fire-weather-etl/internal/config"
	"github.com/stretchr/testify/assert"
)

type stubCheck struct{ err error }

func (s stubCheck) CheckReadiness(context.Context) error { return s.err }

func TestEngineOptions(t *testing.T) {
	opts := engineOptions(&config.Config{
		HourlyEnabled:          true,
		HourlyModel:            config.HourlyModelVanWagner,
		LawsonPreviousHourSeed: true,
	})
	assert.True(t, opts.Hourly)
	assert.True(t, opts.HourlyConfig.UseVanWagner)
	assert.True(t, opts.HourlyConfig.UseLawsonPreviousHourSeed)
	assert.False(t, opts.HourlyConfig.Contiguous)

	opts = engineOptions(&config.Config{HourlyModel: config.HourlyModelLawson, LawsonContiguous: true})
	assert.False(t, opts.Hourly)
	assert.False(t, opts.HourlyConfig.UseVanWagner)
	assert.True(t, opts.HourlyConfig.Contiguous)
}

func TestReadiness(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, readiness{}.CheckReadiness(ctx))
	assert.NoError(t, readiness{stubCheck{}, stubCheck{}}.CheckReadiness(ctx))

	errDown := errors.New("store down")
	assert.ErrorIs(t, readiness{stubCheck{}, stubCheck{err: errDown}}.CheckReadiness(ctx), errDown)
}
