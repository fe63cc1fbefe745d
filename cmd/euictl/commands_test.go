package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute 运行 CLI 并返回退出码与输出。
func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(append([]string{"euictl"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestParse_EUI48(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		wants []string
	}{
		{
			"colon_input",
			[]string{"parse", "4d:7e:54:97:2e:ef"},
			[]string{"canonical: 4d7e54972eef", "uint64:    85204980412143", "oui:       4d7e54"},
		},
		{
			"bare_input",
			[]string{"parse", "4d7e54972eef"},
			[]string{"canonical: 4d7e54972eef", "colon:     4d:7e:54:97:2e:ef"},
		},
		{
			"dash_uppercase",
			[]string{"parse", "4D-7E-54-97-2E-EF"},
			[]string{"canonical: 4d7e54972eef"},
		},
		{
			"explicit_width",
			[]string{"parse", "--width", "48", "4d7e54972eef"},
			[]string{"canonical: 4d7e54972eef", "cast:      multicast"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr)
			}
			for _, want := range tt.wants {
				if !strings.Contains(stdout, want) {
					t.Errorf("output missing %q:\n%s", want, stdout)
				}
			}
		})
	}
}

func TestParse_EUI64(t *testing.T) {
	// 长度 16 → 推断为 64 位
	code, stdout, _ := execute(t, "parse", "4d7e540000972eef")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{
		"canonical: 4d7e540000972eef",
		"colon:     4d:7e:54:00:00:97:2e:ef",
		"uint64:    5583992946972634863",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		errText  string
		wantCode int
	}{
		{"bad_length", "4d7e54972e", "invalid length 10", 1},
		{"bad_char", "4d7e54972eez", "invalid character", 1},
		{"mixed_separators", "4d:7e:54-97:2e:ef", "only one type of separator", 1},
		{"separator_placement", ":4d7e:54:97:2e:ef", "separator must be placed", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, "parse", tt.input)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stderr, tt.errText) {
				t.Errorf("stderr missing %q:\n%s", tt.errText, stderr)
			}
		})
	}
}

func TestParse_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no_args", []string{"parse"}},
		{"too_many_args", []string{"parse", "a", "b"}},
		{"bad_width", []string{"parse", "--width", "32", "4d7e54972eef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := execute(t, tt.args...)
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"width48_decimal", []string{"format", "--width", "48", "85204980412143"}, "4d7e54972eef\n"},
		{"width48_hex", []string{"format", "--width", "48", "0x4d7e54972eef"}, "4d7e54972eef\n"},
		{"width64_decimal", []string{"format", "--width", "64", "5583992946972634863"}, "4d7e540000972eef\n"},
		{"width64_zero", []string{"format", "--width", "64", "0"}, "0000000000000000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("output = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestFormat_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not_a_number", []string{"format", "--width", "48", "xyz"}},
		{"overflow_48", []string{"format", "--width", "48", "281474976710656"}},
		{"bad_width", []string{"format", "--width", "56", "1"}},
		{"missing_width", []string{"format", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := execute(t, tt.args...)
			if code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
		})
	}
}

func TestWiden(t *testing.T) {
	code, stdout, _ := execute(t, "widen", "4d-7e-54-97-2e-ef")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if stdout != "4d7e540000972eef\n" {
		t.Errorf("output = %q, want %q", stdout, "4d7e540000972eef\n")
	}
}

func TestWiden_ParseError(t *testing.T) {
	code, _, stderr := execute(t, "widen", "4d7e540000972eef")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	// 64 位输入对 widen 来说长度非法
	if !strings.Contains(stderr, "invalid length 16") {
		t.Errorf("stderr missing length diagnostic:\n%s", stderr)
	}
}

func TestLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	content := `devices:
  - name: switch-3
    mac: "4d:7e:54:97:2e:ef"
  - name: sensor-1
    mac: "0002f7f00b2a"
    interface: "0002f7fffef00b2a"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Run("by_mac", func(t *testing.T) {
		code, stdout, _ := execute(t, "lookup", "--inventory", path, "4d7e54972eef")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		for _, want := range []string{"name:      switch-3", "interface: 4d7e540000972eef"} {
			if !strings.Contains(stdout, want) {
				t.Errorf("output missing %q:\n%s", want, stdout)
			}
		}
	})

	t.Run("by_interface", func(t *testing.T) {
		code, stdout, _ := execute(t, "lookup", "--inventory", path, "0002f7fffef00b2a")
		if code != 0 {
			t.Fatalf("exit code = %d, want 0", code)
		}
		if !strings.Contains(stdout, "name:      sensor-1") {
			t.Errorf("output missing device name:\n%s", stdout)
		}
	})

	t.Run("miss", func(t *testing.T) {
		code, stdout, _ := execute(t, "lookup", "--inventory", path, "111111111111")
		if code != 1 {
			t.Fatalf("exit code = %d, want 1", code)
		}
		if !strings.Contains(stdout, "未找到匹配设备") {
			t.Errorf("output missing miss message:\n%s", stdout)
		}
	})

	t.Run("missing_inventory", func(t *testing.T) {
		code, _, _ := execute(t, "lookup", "--inventory", filepath.Join(t.TempDir(), "nope.yaml"), "4d7e54972eef")
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	})
}

func TestUnknownCommand(t *testing.T) {
	code, _, _ := execute(t, "bogus")
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestResolveWidth(t *testing.T) {
	tests := []struct {
		name    string
		flag    int
		text    string
		want    int
		wantErr bool
	}{
		{"explicit_48", 48, "whatever", 48, false},
		{"explicit_64", 64, "whatever", 64, false},
		{"infer_bare_48", 0, "4d7e54972eef", 48, false},
		{"infer_sep_48", 0, "4d:7e:54:97:2e:ef", 48, false},
		{"infer_bare_64", 0, "4d7e540000972eef", 64, false},
		{"infer_sep_64", 0, "4d:7e:54:00:00:97:2e:ef", 64, false},
		{"unknown_length_defaults_48", 0, "4d7e", 48, false},
		{"invalid_flag", 32, "whatever", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveWidth(tt.flag, tt.text)
			if tt.wantErr {
				var usageErr *usageError
				if !errors.As(err, &usageErr) {
					t.Fatalf("expected *usageError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveWidth(%d, %q) = %d, want %d", tt.flag, tt.text, got, tt.want)
			}
		})
	}
}

func TestExitErrorMessage(t *testing.T) {
	err := &exitError{code: 1}
	if err.Error() != "" {
		t.Errorf("exitError.Error() = %q, want empty", err.Error())
	}
}
