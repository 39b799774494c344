package safety

import "testing"

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    Decision
	}{
		{"simple safe command", "ls -la", Safe},
		{"safe command with pipe", "ls -la | grep foo", Safe},
		{"compound safe commands", "ls && pwd", Safe},
		{"git status safe", "git status", Safe},
		{"git push unsafe", "git push origin main", Unknown},
		{"rm unsafe", "rm -rf /tmp/x", Unknown},
		{"output redirect to file unsafe", "echo hi > /tmp/out.txt", Unknown},
		{"output redirect to devnull safe", "echo hi > /dev/null", Safe},
		{"fd dup safe", "echo hi 2>&1", Safe},
		{"command substitution unsafe", "echo $(rm -rf /)", Unknown},
		{"variable expansion unsafe", "echo $FOO", Unknown},
		{"time wrapper safe", "time ls -la", Safe},
		{"nice wrapper safe", "nice -n 10 ls", Safe},
		{"timeout wrapper safe", "timeout 5 ls", Safe},
		{"uv run wrapper safe", "uv run pytest --help", Safe},
		{"bare uv sync not unwrapped", "uv sync", Unknown},
		{"aws describe safe", "aws ec2 describe-instances", Safe},
		{"aws ls safe", "aws s3 ls", Safe},
		{"aws delete unsafe", "aws s3 rb s3://bucket", Unknown},
		{"az vm depth1 safe", "az vm list", Safe},
		{"az cognitiveservices depth3 show safe", "az cognitiveservices account deployment show --name foo", Safe},
		{"az cognitiveservices depth3 create unsafe", "az cognitiveservices account deployment create --name foo", Unknown},
		{"gh pr view safe", "gh pr view 123", Safe},
		{"gh pr merge unsafe", "gh pr merge 123", Unknown},
		{"gh api get safe", "gh api repos/foo/bar", Safe},
		{"gh api post unsafe", "gh api repos/foo/bar -X POST -F name=x", Unknown},
		{"kubectl get safe", "kubectl get pods", Safe},
		{"kubectl alias safe", "k get pods", Safe},
		{"kubectl delete unsafe", "kubectl delete pod foo", Unknown},
		{"find plain safe", "find . -name '*.go'", Safe},
		{"find delete unsafe", "find . -name '*.tmp' -delete", Unknown},
		{"sort plain safe", "sort file.txt", Safe},
		{"sort -o unsafe", "sort -o out.txt file.txt", Unknown},
		{"sed plain safe", "sed 's/a/b/' file.txt", Safe},
		{"sed -i unsafe", "sed -i 's/a/b/' file.txt", Unknown},
		{"curl get safe", "curl https://example.com", Safe},
		{"curl post unsafe", "curl -X POST https://example.com", Unknown},
		{"curl output unsafe", "curl -o out.html https://example.com", Unknown},
		{"curlie get safe", "curlie https://example.com", Safe},
		{"bash -c safe inner", "bash -c 'ls -la'", Safe},
		{"bash -c unsafe inner", "bash -c 'rm -rf /'", Unknown},
		{"xargs safe inner", "echo foo | xargs echo", Safe},
		{"xargs unsafe inner", "echo foo | xargs rm", Unknown},
		{"prefix command git config get safe", "git config --get user.name", Safe},
		{"pre-commit run safe", "pre-commit run --all-files", Safe},
		{"pre-commit install not covered", "pre-commit install", Unknown},
		{"help flag always safe", "rm --help", Safe},
		{"ip addr show safe", "ip addr show", Safe},
		{"ip addr default safe", "ip addr", Safe},
		{"ip addr add unsafe", "ip addr add 10.0.0.1/24 dev eth0", Unknown},
		{"ifconfig plain safe", "ifconfig", Safe},
		{"ifconfig interface safe", "ifconfig eth0", Safe},
		{"ifconfig up unsafe", "ifconfig eth0 up", Unknown},
		{"empty command asks", "", Unknown},
		{"whitespace-only command asks", "   ", Unknown},
		{"gh api explicit get with field safe", "gh api -X GET search/issues -f q=repo:o/r", Safe},
		{"gh api implicit post via field unsafe", "gh api repos/o/r/issues -f title=x", Unknown},
		{"gh api explicit post unsafe", "gh api -X POST repos/o/r/issues", Unknown},
		{"auth0 api get safe", "auth0 api get users", Safe},
		{"auth0 api post verb unsafe", "auth0 api post users", Unknown},
		{"auth0 api data flag unsafe", `auth0 api -d '{"x":1}' users`, Unknown},
		{"awk plain safe", "awk '{print $1}' file.txt", Safe},
		{"awk system unsafe", `awk '{system("rm file")}'`, Unknown},
		{"awk redirect unsafe", `awk '{print $1 > "out.txt"}'`, Unknown},
		{"awk pipe unsafe", `awk '{print $1 | "sh"}'`, Unknown},
		{"awk -f file unsafe", "awk -f script.awk file.txt", Unknown},
		{"bash -lc safe inner", "bash -lc 'git status && ls -la'", Safe},
		{"bash -lc unsafe inner", "bash -lc 'rm foo'", Unknown},
		{"curl output devnull safe", "curl -s -o /dev/null -w '%{http_code}' https://example.com", Safe},
		{"curl remote-name unsafe", "curl -O https://example.com/file", Unknown},
		{"time clause safe", "time ls -la", Safe},
		{"time -p clause safe", "time -p ls -la", Safe},
		{"start-time flag not corrupted", "aws ec2 describe-instances --start-time 2024-01-01", Safe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.command)
			if got.Decision != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v (reason: %s)", tt.command, got.Decision, tt.want, got.Reason)
			}
		})
	}
}

func TestPreprocessDoesNotCorruptTimeFlags(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  ls -la  ", "ls -la"},
		{"aws ec2 describe-instances --start-time 2024-01-01 --end-time 2024-01-02",
			"aws ec2 describe-instances --start-time 2024-01-01 --end-time 2024-01-02"},
		{"--time", "--time"},
	}
	for _, tt := range tests {
		if got := Preprocess(tt.in); got != tt.want {
			t.Errorf("Preprocess(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripWrappers(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"no wrapper", []string{"ls", "-la"}, []string{"ls", "-la"}},
		{"timeout with n", []string{"timeout", "5", "ls"}, []string{"ls"}},
		{"nice with flag pair", []string{"nice", "-n", "10", "ls"}, []string{"ls"}},
		{"nice bare", []string{"nice", "ls"}, []string{"ls"}},
		{"env with assignment", []string{"env", "FOO=bar", "ls"}, []string{"ls"}},
		{"uv run", []string{"uv", "run", "pytest"}, []string{"pytest"}},
		{"uv sync not unwrapped", []string{"uv", "sync"}, []string{"uv", "sync"}},
		{"nested timeout nice", []string{"timeout", "5", "nice", "ls"}, []string{"ls"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripWrappers(tt.in)
			if !equalStrings(got, tt.want) {
				t.Errorf("stripWrappers(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
