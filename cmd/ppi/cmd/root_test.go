package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/msto63/ppinterpreter/internal/config"
)

const fibSource = `def fib(n):
    if n < 2:
        return n
    end
    return fib(n - 1) + fib(n - 2)
end

read n
print fib(n)
`

// runPPI runs the command line without colors and isolated from any user
// configuration
func runPPI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")

	var stdout, stderr bytes.Buffer
	code := run(append(args, "--no-color"), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRoot_Parse(t *testing.T) {
	path := writeFile(t, "fib.pp", fibSource)

	code, stdout, stderr := runPPI(t, path)
	if code != ExitOK {
		t.Fatalf("exit = %d, want %d; stderr:\n%s", code, ExitOK, stderr)
	}
	if want := "ok " + path + ": 2 statements, 1 function\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRoot_ExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		args       func(t *testing.T) []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "missing argument",
			args:       func(t *testing.T) []string { return nil },
			wantCode:   ExitUsage,
			wantStderr: "missing source file",
		},
		{
			name:       "too many arguments",
			args:       func(t *testing.T) []string { return []string{"a.pp", "b.pp"} },
			wantCode:   ExitUsage,
			wantStderr: "Usage:",
		},
		{
			name:       "missing file",
			args:       func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "nope.pp")} },
			wantCode:   ExitFile,
			wantStderr: "no such file or directory",
		},
		{
			name:       "syntax error",
			args:       func(t *testing.T) []string { return []string{writeFile(t, "bad.pp", "if a > :\n end\n")} },
			wantCode:   ExitSource,
			wantStderr: "line 1: expected identifier, number, '-' or '(', got ':'",
		},
		{
			name:       "lexical error",
			args:       func(t *testing.T) []string { return []string{writeFile(t, "bad.pp", "x = 1 $ 2\n")} },
			wantCode:   ExitSource,
			wantStderr: "line 1: invalid character '$'",
		},
		{
			name: "missing config",
			args: func(t *testing.T) []string {
				return []string{"--config", filepath.Join(t.TempDir(), "none.toml"), writeFile(t, "ok.pp", "print 1\n")}
			},
			wantCode:   ExitConfig,
			wantStderr: "config file not found",
		},
		{
			name: "invalid config",
			args: func(t *testing.T) []string {
				cfg := writeFile(t, "ppi.toml", "[parser]\nline_mode = \"middle\"\n")
				return []string{"--config", cfg, writeFile(t, "ok.pp", "print 1\n")}
			},
			wantCode:   ExitConfig,
			wantStderr: "parser.line_mode",
		},
		{
			name:       "invalid log format",
			args:       func(t *testing.T) []string { return []string{"--log-format", "xml", writeFile(t, "ok.pp", "print 1\n")} },
			wantCode:   ExitConfig,
			wantStderr: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runPPI(t, tt.args(t)...)
			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d; stderr:\n%s", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRoot_ConfigFromEnv(t *testing.T) {
	src := writeFile(t, "dup.pp", "def f():\nend\ndef f():\nend\n")

	code, _, _ := runPPI(t, src)
	if code != ExitOK {
		t.Errorf("exit = %d with default duplicates policy, want %d", code, ExitOK)
	}

	cfg := writeFile(t, "ppi.yaml", "parser:\n  duplicates: reject\n")
	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvConfigPath, cfg)
	code = run([]string{src, "--no-color"}, &stdout, &stderr)
	if code != ExitSource {
		t.Errorf("exit = %d with reject policy, want %d", code, ExitSource)
	}
	if !strings.Contains(stderr.String(), `function "f" already defined at line 1`) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRoot_VerboseLogging(t *testing.T) {
	path := writeFile(t, "ok.pp", "print 1\n")

	code, _, stderr := runPPI(t, "-v", "--log-format", "json", path)
	if code != ExitOK {
		t.Fatalf("exit = %d; stderr:\n%s", code, stderr)
	}
	for _, want := range []string{`"message":"configuration loaded"`, `"message":"parse finished"`, `"component":"ppi-parser"`, `"run_id":"`} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %s:\n%s", want, stderr)
		}
	}
}

func TestTokens(t *testing.T) {
	path := writeFile(t, "if.pp", "if a > b:\n  print a\nend\n")

	code, stdout, stderr := runPPI(t, "tokens", path)
	if code != ExitOK {
		t.Fatalf("exit = %d; stderr:\n%s", code, stderr)
	}
	want := "IF\t1\nVAR\t1\nGT\t1\nVAR\t1\nCOL\t1\nNEWLINE\t1\n" +
		"PRINT\t2\nVAR\t2\nNEWLINE\t2\n" +
		"END\t3\nNEWLINE\t3\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}
}

func TestTokens_Text(t *testing.T) {
	path := writeFile(t, "x.pp", "x = 42\n")

	_, stdout, _ := runPPI(t, "tokens", "--text", path)
	if want := "VAR\t1\tx\nASGN\t1\nNUM\t1\t42\nNEWLINE\t1\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestTokens_Invalid(t *testing.T) {
	path := writeFile(t, "bad.pp", "read x\nx = @\n")

	code, stdout, stderr := runPPI(t, "tokens", path)
	if code != ExitSource {
		t.Errorf("exit = %d, want %d", code, ExitSource)
	}
	if want := "READ\t1\nVAR\t1\nNEWLINE\t1\nVAR\t2\nASGN\t2\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
	if !strings.Contains(stderr, "line 2: invalid character '@'") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestAST(t *testing.T) {
	path := writeFile(t, "x.pp", "x = 1 + 2\n")

	t.Run("tree", func(t *testing.T) {
		_, stdout, _ := runPPI(t, "ast", path)
		want := "Program @1\n" +
			"  VarDef x @1\n" +
			"    Operator + @1\n" +
			"      Num 1 @1\n" +
			"      Num 2 @1\n"
		if stdout != want {
			t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		_, stdout, _ := runPPI(t, "ast", "--format", "json", path)
		var doc map[string]interface{}
		if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, stdout)
		}
		body := doc["entry"].(map[string]interface{})["body"].([]interface{})
		if def := body[0].(map[string]interface{}); def["kind"] != "VarDef" || def["name"] != "x" {
			t.Errorf("body[0] = %v", def)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		_, stdout, _ := runPPI(t, "ast", "-f", "yaml", path)
		var doc map[string]interface{}
		if err := yaml.Unmarshal([]byte(stdout), &doc); err != nil {
			t.Fatalf("output is not YAML: %v\n%s", err, stdout)
		}
		if _, ok := doc["functions"]; !ok {
			t.Errorf("document = %v, want a functions key", doc)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		code, _, stderr := runPPI(t, "ast", "--format", "xml", path)
		if code != ExitUsage || !strings.Contains(stderr, `unknown format "xml"`) {
			t.Errorf("exit = %d, stderr = %q", code, stderr)
		}
	})
}

func TestFmt(t *testing.T) {
	path := writeFile(t, "messy.pp", "# comment\nread   n\nwhile n>0:\nprint (n*2)\nn=n-1\nend\n")

	code, stdout, stderr := runPPI(t, "fmt", path)
	if code != ExitOK {
		t.Fatalf("exit = %d; stderr:\n%s", code, stderr)
	}
	want := "read n\n" +
		"while n > 0:\n" +
		"    print n * 2\n" +
		"    n = n - 1\n" +
		"end\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}

	code, _, _ = runPPI(t, "fmt", "-w", path)
	if code != ExitOK {
		t.Fatalf("fmt -w exit = %d", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("rewritten file =\n%s\nwant\n%s", data, want)
	}
}

func TestFmt_RightAssociative(t *testing.T) {
	path := writeFile(t, "sub.pp", "x = a - b - c\n")
	cfg := writeFile(t, "ppi.toml", "[parser]\nassociativity = \"right\"\n")

	_, stdout, _ := runPPI(t, "--config", cfg, "fmt", path)
	if want := "x = a - b - c\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	_, stdout, _ = runPPI(t, "fmt", writeFile(t, "grouped.pp", "x = a - (b - c)\n"))
	if want := "x = a - (b - c)\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestVersion(t *testing.T) {
	// a broken configuration must not matter here
	t.Setenv(config.EnvConfigPath, "/nonexistent/ppi.toml")

	var stdout, stderr bytes.Buffer
	code := run([]string{"version", "--no-color"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit = %d; stderr:\n%s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "ppi v") || !strings.Contains(stdout.String(), "Go Version:") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(errMissingFile); got != ExitUsage {
		t.Errorf("exitCode(errMissingFile) = %d, want %d", got, ExitUsage)
	}
}
