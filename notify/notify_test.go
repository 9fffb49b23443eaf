package notify

import (
	"bytes"
	"testing"
)

func TestConsoleWritesOneLinePerNotice(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)
	c.Success("Login realizado com sucesso!")
	c.Error("Senha incorreta.")

	want := "✔ Login realizado com sucesso!\n✖ Senha incorreta.\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	Multi{a, b}.Error("x")

	if a.Count(LevelError, "x") != 1 || b.Count(LevelError, "x") != 1 {
		t.Fatal("both recorders should receive the notice")
	}
	if last, ok := a.Last(); !ok || last.Level != LevelError {
		t.Fatalf("unexpected last notice %+v", last)
	}
}
