package models

import "strings"

type ServiceType string

const (
	Haircut                     ServiceType = "HAIRCUT"
	Beard                       ServiceType = "BEARD"
	HaircutAndBeard             ServiceType = "HAIRCUT_AND_BEARD"
	Haircolor                   ServiceType = "HAIRCOLOR"
	BeardAndHaircutAndHaircolor ServiceType = "BEARD_AND_HAIRCUT_AND_HAIRCOLOR"
)

// ServiceTypes lists every valid type, in menu order.
var ServiceTypes = []ServiceType{
	Haircut,
	Beard,
	HaircutAndBeard,
	Haircolor,
	BeardAndHaircutAndHaircolor,
}

func (t ServiceType) Valid() bool {
	for _, v := range ServiceTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Display renders HAIRCUT_AND_BEARD as "Haircut And Beard".
func (t ServiceType) Display() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ServiceDurations is the fixed set of selectable durations, in minutes.
var ServiceDurations = []int{15, 30, 45, 60, 75, 90, 105, 120, 145, 160, 175, 190}

func ValidDuration(minutes int) bool {
	for _, d := range ServiceDurations {
		if minutes == d {
			return true
		}
	}
	return false
}

// Service is one offering of a barber. Unique per (barberId, type).
type Service struct {
	ID                       uint        `json:"id"`
	Service                  ServiceType `json:"service"`
	DefaultDurationInMinutes int         `json:"defaultDurationInMinutes"`
}
