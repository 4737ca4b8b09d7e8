package enums

import "testing"

func TestParsePaymentMethod(t *testing.T) {
	for _, method := range PaymentMethods() {
		got, err := ParsePaymentMethod(method.String())
		if err != nil || got != method {
			t.Fatalf("round trip failed for %s: %v", method, err)
		}
		if method.Label() == "" {
			t.Fatalf("missing label for %s", method)
		}
	}
	if _, err := ParsePaymentMethod("cash"); err == nil {
		t.Fatal("expected cash to be rejected")
	}
	if !PaymentMethodCard.RequiresCard() || PaymentMethodInterac.RequiresCard() {
		t.Fatal("only card payments require card details")
	}
}

func TestParseProvince(t *testing.T) {
	p, err := ParseProvince(" on ")
	if err != nil || p != ProvinceON {
		t.Fatalf("expected ON, got %q (%v)", p, err)
	}
	if p.Name() != "Ontario" {
		t.Fatalf("unexpected name %q", p.Name())
	}
	if _, err := ParseProvince("WA"); err == nil {
		t.Fatal("expected unknown code to fail")
	}
	if len(provinceNames) != 13 {
		t.Fatalf("expected 13 provinces and territories, got %d", len(provinceNames))
	}
	list := Provinces()
	if len(list) != len(provinceNames) || list[0] != ProvinceAB || list[len(list)-1] != ProvinceYT {
		t.Fatalf("unexpected province order %v", list)
	}
	for _, code := range list {
		if code.Name() == "" {
			t.Fatalf("province %s has no name", code)
		}
	}
}

func TestSurveyEnums(t *testing.T) {
	if _, err := ParseHowHeard("friend-family"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseHowHeard("billboard"); err == nil {
		t.Fatal("expected billboard to be rejected")
	}
	if Satisfaction(0).IsValid() || Satisfaction(6).IsValid() || !Satisfaction(3).IsValid() {
		t.Fatal("satisfaction bounds are 1..5")
	}
}
