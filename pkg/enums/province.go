package enums

import (
	"fmt"
	"strings"
)

// Province is a Canadian province or territory code used for shipping.
type Province string

const (
	ProvinceAB Province = "AB"
	ProvinceBC Province = "BC"
	ProvinceMB Province = "MB"
	ProvinceNB Province = "NB"
	ProvinceNL Province = "NL"
	ProvinceNS Province = "NS"
	ProvinceON Province = "ON"
	ProvincePE Province = "PE"
	ProvinceQC Province = "QC"
	ProvinceSK Province = "SK"
	ProvinceNT Province = "NT"
	ProvinceNU Province = "NU"
	ProvinceYT Province = "YT"
)

var provinceOrder = []Province{
	ProvinceAB, ProvinceBC, ProvinceMB, ProvinceNB, ProvinceNL, ProvinceNS, ProvinceON,
	ProvincePE, ProvinceQC, ProvinceSK, ProvinceNT, ProvinceNU, ProvinceYT,
}

var provinceNames = map[Province]string{
	ProvinceAB: "Alberta",
	ProvinceBC: "British Columbia",
	ProvinceMB: "Manitoba",
	ProvinceNB: "New Brunswick",
	ProvinceNL: "Newfoundland and Labrador",
	ProvinceNS: "Nova Scotia",
	ProvinceON: "Ontario",
	ProvincePE: "Prince Edward Island",
	ProvinceQC: "Quebec",
	ProvinceSK: "Saskatchewan",
	ProvinceNT: "Northwest Territories",
	ProvinceNU: "Nunavut",
	ProvinceYT: "Yukon",
}

func (p Province) String() string {
	return string(p)
}

// Name returns the full province name, or "" for unknown codes.
func (p Province) Name() string {
	return provinceNames[p]
}

func (p Province) IsValid() bool {
	_, ok := provinceNames[p]
	return ok
}

// ParseProvince accepts a code in any case.
func ParseProvince(value string) (Province, error) {
	p := Province(strings.ToUpper(strings.TrimSpace(value)))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid province %q", value)
	}
	return p, nil
}

// Provinces returns every code in form order.
func Provinces() []Province {
	out := make([]Province, len(provinceOrder))
	copy(out, provinceOrder)
	return out
}
