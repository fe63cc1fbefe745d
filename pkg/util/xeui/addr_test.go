package xeui

import "testing"

func TestFromUint48RoundTrip(t *testing.T) {
	tests := []uint64{
		0,
		1,
		85204980412143, // 0x4d7e54972eef
		0xffffffffffff,
		0x000000000001,
		0x800000000000,
	}
	for _, v := range tests {
		a := FromUint48(v)
		if got := a.Uint64(); got != v {
			t.Errorf("FromUint48(%d).Uint64() = %d", v, got)
		}
	}
}

func TestFromUint48TruncatesHighBits(t *testing.T) {
	// 高 16 位被忽略。
	a := FromUint48(0xffff4d7e54972eef)
	b := FromUint48(0x00004d7e54972eef)
	if a != b {
		t.Errorf("high bits should be ignored: %v != %v", a, b)
	}
	if got := a.Uint64(); got != 0x4d7e54972eef {
		t.Errorf("Uint64() = %#x, want 0x4d7e54972eef", got)
	}
}

func TestFromUint64RoundTrip(t *testing.T) {
	tests := []uint64{
		0,
		1,
		5583992946972634863, // 0x4d7e540000972eef
		^uint64(0),
		1 << 63,
	}
	for _, v := range tests {
		a := FromUint64(v)
		if got := a.Uint64(); got != v {
			t.Errorf("FromUint64(%d).Uint64() = %d", v, got)
		}
	}
}

func TestWidening(t *testing.T) {
	a := FromUint48(85204980412143)
	w := a.EUI64()

	// 中间两字节固定填充 0x00,0x00（既有行为，非 IEEE 的 0xff,0xfe）。
	if got := w.String(); got != "4d7e540000972eef" {
		t.Errorf("widened String() = %q, want \"4d7e540000972eef\"", got)
	}
	if w != FromUint64(5583992946972634863) {
		t.Errorf("widened value = %v", w)
	}

	b := w.Bytes()
	if b[3] != 0x00 || b[4] != 0x00 {
		t.Errorf("padding bytes = %#x,%#x, want 0x00,0x00", b[3], b[4])
	}

	// 零扩展为零。
	if got := (EUI48{}).EUI64(); got != (EUI64{}) {
		t.Errorf("zero widened = %v, want zero", got)
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	a := MustParse48("4d7e54972eef")
	b := a.Bytes()
	b[0] = 0xff
	if a.Bytes()[0] != 0x4d {
		t.Error("Bytes() must return a copy")
	}
}

func TestCompare(t *testing.T) {
	low := FromUint48(1)
	high := FromUint48(2)

	if got := low.Compare(high); got != -1 {
		t.Errorf("low.Compare(high) = %d, want -1", got)
	}
	if got := high.Compare(low); got != 1 {
		t.Errorf("high.Compare(low) = %d, want 1", got)
	}
	if got := low.Compare(low); got != 0 {
		t.Errorf("low.Compare(low) = %d, want 0", got)
	}

	// 大端比较：首字节优先。
	a := From6([6]byte{0x01, 0xff, 0xff, 0xff, 0xff, 0xff})
	b := From6([6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00})
	if got := a.Compare(b); got != -1 {
		t.Errorf("byte-order compare = %d, want -1", got)
	}

	w1 := FromUint64(100)
	w2 := FromUint64(200)
	if got := w1.Compare(w2); got != -1 {
		t.Errorf("EUI64 compare = %d, want -1", got)
	}
}

func TestIsZero(t *testing.T) {
	if !(EUI48{}).IsZero() {
		t.Error("zero EUI48 should report IsZero")
	}
	if FromUint48(1).IsZero() {
		t.Error("non-zero EUI48 should not report IsZero")
	}
	if !(EUI64{}).IsZero() {
		t.Error("zero EUI64 should report IsZero")
	}
	if FromUint64(1).IsZero() {
		t.Error("non-zero EUI64 should not report IsZero")
	}
}

func TestOUI(t *testing.T) {
	a := MustParse48("4d7e54972eef")
	if got := a.OUI(); got != [3]byte{0x4d, 0x7e, 0x54} {
		t.Errorf("OUI() = %v", got)
	}
}

func TestCastBits(t *testing.T) {
	unicast := MustParse48("4d7e54972eef") // 0x4d bit0 = 1? 0x4d = 0100_1101，bit0 为 1
	if !unicast.IsMulticast() {
		t.Error("0x4d leading byte has bit0 set, should be multicast")
	}
	if unicast.IsUnicast() {
		t.Error("multicast identifier reported as unicast")
	}

	u := From6([6]byte{0x4c, 0, 0, 0, 0, 1})
	if !u.IsUnicast() || u.IsMulticast() {
		t.Error("0x4c leading byte should be unicast")
	}
}

func TestMapKeyUsage(t *testing.T) {
	// 值类型可直接作 map key，结构相等即键相等。
	m := map[EUI48]string{
		MustParse48("4d:7e:54:97:2e:ef"): "dev-a",
	}
	if got := m[MustParse48("4D-7E-54-97-2E-EF")]; got != "dev-a" {
		t.Errorf("map lookup via differently-formatted text = %q", got)
	}
}

func TestHash64(t *testing.T) {
	a := MustParse48("4d7e54972eef")
	b := MustParse48("4d:7e:54:97:2e:ef")

	if a.Hash64() != b.Hash64() {
		t.Error("equal identifiers must hash equal")
	}
	if a.Hash64() == FromUint48(1).Hash64() {
		t.Error("distinct identifiers should not collide on this fixture")
	}

	// 哈希只依赖原始字节：EUI-48 与其扩展的 EUI-64 字节不同，摘要不同。
	if a.Hash64() == a.EUI64().Hash64() {
		t.Error("EUI48 and widened EUI64 have different raw bytes, hashes should differ")
	}

	// 确定性。
	if a.Hash64() != a.Hash64() {
		t.Error("Hash64 must be deterministic")
	}
}
