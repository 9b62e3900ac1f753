package service

import (
	"time"

	"airthings2mqtt/internal/core/domain"
	"airthings2mqtt/pkg/airthings"
)

// FreshnessWindow is how old a reading may be and still count as a current
// value.
const FreshnessWindow = 7200 * time.Second

// Per-factor rating thresholds. Values at or above the bound rate as that
// level, checked from worst to best.
const (
	co2FairPPM    = 800
	co2PoorPPM    = 1000
	moldFairIdx   = 3
	moldPoorIdx   = 5
	pm25FairUgm3  = 10
	pm25PoorUgm3  = 25
	radonFairBqm3 = 100
	radonPoorBqm3 = 150
	vocFairPPB    = 250
	vocPoorPPB    = 2000
)

// VOC ppb to ug/m3 conversion constants: assumed average molar mass of the
// VOC mixture (g/mol) and molar volume (L/mol) at 0 degC / 1013 mBar.
const (
	vocMolarMass     = 78
	molarVolume      = 22.41
	standardPressure = 1013
	fallbackTempC    = 25
)

// Classify rates a sample by taking the worst level over every factor the
// sample actually carries. Absent factors contribute nothing; a sample with
// no factors at all rates Unknown.
func Classify(sample airthings.Sample) domain.AirQualityLevel {
	level := domain.AirQualityUnknown

	if sample.Humidity != nil {
		level = level.Worst(humidityLevel(*sample.Humidity))
	}
	if sample.CO2 != nil {
		level = level.Worst(thresholdLevel(*sample.CO2, co2FairPPM, co2PoorPPM))
	}
	if sample.Mold != nil {
		level = level.Worst(thresholdLevel(*sample.Mold, moldFairIdx, moldPoorIdx))
	}
	if sample.PM25 != nil {
		level = level.Worst(thresholdLevel(*sample.PM25, pm25FairUgm3, pm25PoorUgm3))
	}
	if sample.RadonShortTermAvg != nil {
		level = level.Worst(thresholdLevel(*sample.RadonShortTermAvg, radonFairBqm3, radonPoorBqm3))
	}
	if sample.VOC != nil {
		level = level.Worst(thresholdLevel(*sample.VOC, vocFairPPB, vocPoorPPB))
	}

	return level
}

func thresholdLevel(value, fairBound, poorBound float64) domain.AirQualityLevel {
	switch {
	case value >= poorBound:
		return domain.AirQualityPoor
	case value >= fairBound:
		return domain.AirQualityFair
	default:
		return domain.AirQualityExcellent
	}
}

// humidityLevel rates relative humidity on a two-sided band: both too dry
// and too damp degrade the rating.
func humidityLevel(rh float64) domain.AirQualityLevel {
	switch {
	case rh < 25 || rh >= 70:
		return domain.AirQualityPoor
	case rh < 30 || rh >= 60:
		return domain.AirQualityFair
	default:
		return domain.AirQualityExcellent
	}
}

// VOCDensity converts the VOC reading from a volumetric concentration (ppb)
// to a mass density (ug/m3) with the ideal-gas molar volume corrected for
// the sampled temperature and pressure. Missing temperature or pressure
// fall back to 25 degC / 1013 mBar so the value stays computable on partial
// snapshots; a missing VOC reading yields 0.
func VOCDensity(sample airthings.Sample) float64 {
	if sample.VOC == nil {
		return 0
	}
	tempC := float64(fallbackTempC)
	if sample.Temp != nil {
		tempC = *sample.Temp
	}
	pressure := float64(standardPressure)
	if sample.Pressure != nil {
		pressure = *sample.Pressure
	}
	return *sample.VOC * (vocMolarMass / (molarVolume * ((tempC + 273) / 273) * (standardPressure / pressure)))
}

// Fresh reports whether the sample's reading timestamp is recent enough for
// its values to count as current. A sample without a timestamp is never
// fresh.
func Fresh(sample airthings.Sample, now time.Time) bool {
	if sample.Time == nil {
		return false
	}
	return now.Unix()-*sample.Time < int64(FreshnessWindow/time.Second)
}

// ReadingActive reports whether one specific reading is present and the
// snapshot is fresh. The composite air quality rating only requires
// freshness, since it aggregates whatever factors are present.
func ReadingActive(sample airthings.Sample, reading *float64, now time.Time) bool {
	return reading != nil && Fresh(sample, now)
}
