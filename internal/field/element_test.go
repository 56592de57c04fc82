package field

import "testing"

func TestNewElementFromRaw_Masks(t *testing.T) {
	e := NewElementFromRaw([NumLimbs]uint64{
		0xFFFFFFFFFFFFFFFF,
		0x123456789ABCDEF0,
		LimbMask,
		LimbMask + 1,
		0,
	})
	want := Element{LimbMask, 0x123456789ABCDEF0 & LimbMask, LimbMask, 0, 0}
	if e != want {
		t.Errorf("NewElementFromRaw = %s, want %s", e.Hex(), want.Hex())
	}
}

func TestIsValid(t *testing.T) {
	valid := Element{LimbMask, 0, 1, LimbMask, 42}
	if !valid.IsValid() {
		t.Errorf("IsValid(%s) = false, want true", valid.Hex())
	}
	invalid := Element{0, 0, LimbMask + 1, 0, 0}
	if invalid.IsValid() {
		t.Error("IsValid = true for limb >= 2^52, want false")
	}
}

func TestHex(t *testing.T) {
	e := Element{0x94f918f48bdf0, 0x30eca8641fdba, 0xb851eb851eb86, 0xfa4fa4fa4fa50, 0xd4c3b2a1907f7}
	want := "d4c3b2a1907f7 fa4fa4fa4fa50 b851eb851eb86 30eca8641fdba 94f918f48bdf0"
	if got := e.Hex(); got != want {
		t.Errorf("Hex() = %q, want %q", got, want)
	}

	var zero Element
	wantZero := "0000000000000 0000000000000 0000000000000 0000000000000 0000000000000"
	if got := zero.Hex(); got != wantZero {
		t.Errorf("zero Hex() = %q, want %q", got, wantZero)
	}
}

func TestParseElement(t *testing.T) {
	t.Run("valid with prefixes and spaces", func(t *testing.T) {
		e, err := ParseElement("0x1, 2, 0x3333333333333, 0, 0xFFFFFFFFFFFFFFFF")
		if err != nil {
			t.Fatalf("ParseElement returned error: %v", err)
		}
		want := Element{1, 2, 0x3333333333333, 0, LimbMask}
		if e != want {
			t.Errorf("ParseElement = %s, want %s", e.Hex(), want.Hex())
		}
	})

	t.Run("wrong limb count", func(t *testing.T) {
		if _, err := ParseElement("1,2,3"); err == nil {
			t.Error("ParseElement accepted 3 limbs, want error")
		}
	})

	t.Run("invalid hex", func(t *testing.T) {
		if _, err := ParseElement("1,2,3,zz,5"); err == nil {
			t.Error("ParseElement accepted invalid hex, want error")
		}
	})
}

func TestFactory(t *testing.T) {
	f := NewDefaultFactory()

	t.Run("List is sorted and complete", func(t *testing.T) {
		keys := f.List()
		if len(keys) != 2 || keys[0] != "karatsuba" || keys[1] != "schoolbook" {
			t.Errorf("List() = %v, want [karatsuba schoolbook]", keys)
		}
	})

	t.Run("Get is case-insensitive", func(t *testing.T) {
		m, err := f.Get("Karatsuba")
		if err != nil {
			t.Fatalf("Get(Karatsuba) error: %v", err)
		}
		if m.Name() != "Karatsuba" {
			t.Errorf("Name() = %q, want Karatsuba", m.Name())
		}
	})

	t.Run("Get unknown key fails", func(t *testing.T) {
		if _, err := f.Get("montgomery"); err == nil {
			t.Error("Get(montgomery) succeeded, want error")
		}
	})

	t.Run("GetAll matches List order", func(t *testing.T) {
		all := f.GetAll()
		if len(all) != 2 {
			t.Fatalf("GetAll() returned %d multipliers, want 2", len(all))
		}
		if all[0].Name() != "Karatsuba" || all[1].Name() != "Schoolbook" {
			t.Errorf("GetAll order = [%s %s]", all[0].Name(), all[1].Name())
		}
	})
}
