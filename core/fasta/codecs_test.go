package fasta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

func TestStreamZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa.zst")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	zw, err := zstd.NewWriter(fh)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(plain)); err != nil {
		t.Fatalf("write zstd: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zstd: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	rs := collect(t, path)
	if len(rs) != 2 || rs[0].ID != "seq1" || string(rs[1].Seq) != "NNnn" {
		t.Fatalf("zstd parse failed: %+v", rs)
	}
}

func TestStreamXz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fa.xz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	xw, err := xz.NewWriter(fh)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write([]byte(plain)); err != nil {
		t.Fatalf("write xz: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("close xz: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	rs := collect(t, path)
	if len(rs) != 2 || rs[0].ID != "seq1" {
		t.Fatalf("xz parse failed: %+v", rs)
	}
}

// The standard library can only read bzip2, so the fixture is a
// pre-compressed copy of ">bz1\nACGTACGTAA\n>bz2\nTTTTTTTTTT\n".
var bzip2Fixture = []byte{
	0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xae, 0xcc,
	0x62, 0x76, 0x00, 0x00, 0x03, 0xcf, 0x80, 0x01, 0x10, 0x30, 0x01, 0x28,
	0x80, 0x04, 0x00, 0x10, 0x00, 0x00, 0x10, 0x20, 0x00, 0x21, 0x2a, 0x64,
	0xf5, 0x3d, 0x4c, 0x08, 0x06, 0x9a, 0x68, 0xa8, 0x6b, 0xd8, 0x31, 0x32,
	0x64, 0xa3, 0xb6, 0x40, 0xac, 0xc3, 0x45, 0xdc, 0x91, 0x4e, 0x14, 0x24,
	0x2b, 0xb3, 0x18, 0x9d, 0x80,
}

func TestStreamBzip2(t *testing.T) {
	path := writeFile(t, "test.fa.bz2", bzip2Fixture)
	rs := collect(t, path)
	if len(rs) != 2 {
		t.Fatalf("bzip2 parse failed: %+v", rs)
	}
	if rs[0].ID != "bz1" || string(rs[0].Seq) != "ACGTACGTAA" {
		t.Fatalf("first record: %+v", rs[0])
	}
	if rs[1].ID != "bz2" || string(rs[1].Seq) != "TTTTTTTTTT" {
		t.Fatalf("second record: %+v", rs[1])
	}
}
