package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/config"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/pipeline"
)

type fakeEditor struct {
	got    string
	result string
	err    error
	during func()
}

func (f *fakeEditor) Edit(_ context.Context, initial string) (string, error) {
	f.got = initial
	if f.during != nil {
		f.during()
	}
	return f.result, f.err
}

type testEnv struct {
	app    *App
	out    *bytes.Buffer
	outDir string
	srcDir string
	editor *fakeEditor
}

func newTestEnv(t *testing.T, input string, mutate ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	for _, fn := range mutate {
		fn(cfg)
	}

	env := &testEnv{out: &bytes.Buffer{}, outDir: cfg.OutputDir, srcDir: t.TempDir(), editor: &fakeEditor{}}
	app, err := NewApp(cfg, nil, WithInput(strings.NewReader(input)), WithOutput(env.out), WithEditor(env.editor))
	require.NoError(t, err)
	env.app = app
	return env
}

func (e *testEnv) writeSource(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(e.srcDir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestNewApp_CreatesOutputDir(t *testing.T) {
	env := newTestEnv(t, "")

	fi, err := os.Stat(env.outDir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
	assert.Equal(t, models.ModeEncode, env.app.Mode())
	assert.Empty(t, env.app.prompt(), "non-interactive input has no prompt")
}

func TestOpen_EncodesTextFile(t *testing.T) {
	env := newTestEnv(t, "")
	path := env.writeSource(t, "hello.txt", []byte("Hello"))

	require.NoError(t, env.app.Open(context.Background(), []string{path}))

	st := env.app.session.Snapshot()
	assert.Equal(t, models.Base64Payload("SGVsbG8="), st.Payload)
	require.NotNil(t, st.Descriptor)
	assert.Equal(t, "hello.txt", st.Descriptor.Name)
	assert.Equal(t, int64(5), st.Descriptor.SizeBytes)
	assert.Equal(t, models.MimeText, st.Descriptor.MimeType)

	out := env.out.String()
	assert.Contains(t, out, "[success] "+msgFileConverted)
	assert.Contains(t, out, labelEncoded)
	assert.Contains(t, out, "SGVsbG8=\n8 characters")
	assert.Contains(t, out, "5 Bytes")
}

func TestOpen_EmptyFile(t *testing.T) {
	env := newTestEnv(t, "")
	path := env.writeSource(t, "empty.txt", nil)

	require.NoError(t, env.app.Open(context.Background(), []string{path}))

	st := env.app.session.Snapshot()
	assert.Empty(t, st.Payload)
	require.NotNil(t, st.Descriptor)
	assert.Zero(t, st.Descriptor.SizeBytes)
}

func TestOpen_RejectsUnsupportedType(t *testing.T) {
	env := newTestEnv(t, "")
	path := env.writeSource(t, "image.png", []byte{0x89, 'P', 'N', 'G'})

	err := env.app.Open(context.Background(), []string{path})
	require.ErrorIs(t, err, common.ErrUnsupportedType)

	st := env.app.session.Snapshot()
	assert.Empty(t, st.Payload)
	assert.Nil(t, st.Descriptor)
	assert.Contains(t, env.out.String(), "[error] "+msgUnsupportedType)
}

func TestOpen_Failures(t *testing.T) {
	env := newTestEnv(t, "", func(c *config.Config) { c.MaxFileSize = 4 })

	err := env.app.Open(context.Background(), []string{filepath.Join(env.srcDir, "missing.txt")})
	require.ErrorIs(t, err, common.ErrRead)
	assert.Contains(t, env.out.String(), msgConvertFailed)

	big := env.writeSource(t, "big.txt", []byte("Hello"))
	err = env.app.Open(context.Background(), []string{big})
	require.ErrorIs(t, err, common.ErrFileTooLarge)
	assert.Contains(t, env.out.String(), msgFileTooLarge)

	require.ErrorIs(t, env.app.Open(context.Background(), nil), common.ErrInvalidTarget)
}

func TestOpen_WrongMode(t *testing.T) {
	env := newTestEnv(t, "")
	require.NoError(t, env.app.SwitchMode(context.Background(), []string{"decode"}))

	err := env.app.Open(context.Background(), []string{"x.txt"})
	require.ErrorIs(t, err, common.ErrWrongMode)
	assert.Contains(t, env.out.String(), "open is only available in encode mode")
}

func TestPasteAndSave_RoundTrip(t *testing.T) {
	env := newTestEnv(t, "SGVsbG8=\n\n")
	ctx := context.Background()

	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))
	require.NoError(t, env.app.Paste(ctx))
	assert.Contains(t, env.out.String(), "[success] "+msgBase64Decoded)
	assert.Contains(t, env.out.String(), labelDecoded)

	require.NoError(t, env.app.Save(ctx, []string{"greeting.txt"}))

	got, err := os.ReadFile(filepath.Join(env.outDir, "greeting.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(got))
	assert.Contains(t, env.out.String(), "Saved ")
}

func TestPaste_WrappedLinesAndDataURI(t *testing.T) {
	env := newTestEnv(t, "data:text/plain;base64,SGVs\nbG8=\n\n")
	ctx := context.Background()

	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))
	require.NoError(t, env.app.Paste(ctx))
	assert.Equal(t, models.Base64Payload("SGVsbG8="), env.app.session.Snapshot().Payload)
}

func TestPaste_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
		err   error
	}{
		{name: "missing padding", input: "SGVsbG8\n\n", msg: msgInvalidBase64, err: common.ErrInvalidBase64},
		{name: "not base64", input: "not base64!\n\n", msg: msgInvalidBase64, err: common.ErrInvalidBase64},
		{name: "blank", input: "\n", msg: msgEmptyBase64, err: common.ErrInvalidBase64},
		{name: "spaces only", input: "   \n\n", msg: msgEmptyBase64, err: common.ErrInvalidBase64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.input)
			ctx := context.Background()
			require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))

			err := env.app.Paste(ctx)
			require.ErrorIs(t, err, tt.err)
			assert.Contains(t, env.out.String(), "[error] "+tt.msg)
			assert.Empty(t, env.app.session.Snapshot().Payload)
		})
	}
}

func TestSave_NeedsPayloadAndName(t *testing.T) {
	env := newTestEnv(t, "SGVsbG8=\n\n")
	ctx := context.Background()
	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))

	require.ErrorIs(t, env.app.Save(ctx, []string{"a.txt"}), common.ErrNoPayload)
	assert.Contains(t, env.out.String(), msgSaveNeedsInput)

	require.NoError(t, env.app.Paste(ctx))
	require.ErrorIs(t, env.app.Save(ctx, nil), common.ErrNoPayload)
}

func TestSave_InvalidTarget(t *testing.T) {
	env := newTestEnv(t, "SGVsbG8=\n\n")
	ctx := context.Background()
	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))
	require.NoError(t, env.app.Paste(ctx))

	err := env.app.Save(ctx, []string{"../escape.txt"})
	require.ErrorIs(t, err, common.ErrInvalidTarget)
	assert.Contains(t, env.out.String(), "[error] "+msgDownloadFailed)
}

func TestSwitchMode_ClearsPayload(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "hello.txt", []byte("Hello"))
	require.NoError(t, env.app.Open(ctx, []string{path}))

	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))

	st := env.app.session.Snapshot()
	assert.Equal(t, models.ModeDecode, st.Mode)
	assert.Empty(t, st.Payload)
	assert.Nil(t, st.Descriptor)
	assert.Contains(t, env.out.String(), models.ModeDecode.Title())
}

func TestSwitchMode_NoArgsAndBadMode(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	require.NoError(t, env.app.SwitchMode(ctx, nil))
	assert.Contains(t, env.out.String(), "Current mode: encode")

	require.Error(t, env.app.SwitchMode(ctx, []string{"sideways"}))
	assert.Equal(t, models.ModeEncode, env.app.Mode())
}

func TestShowInfoWrite(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()

	require.ErrorIs(t, env.app.Show(ctx), common.ErrNoPayload)
	require.ErrorIs(t, env.app.Info(ctx), common.ErrNoPayload)

	path := env.writeSource(t, "hello.txt", []byte("Hello"))
	require.NoError(t, env.app.Open(ctx, []string{path}))
	env.out.Reset()

	require.NoError(t, env.app.Show(ctx))
	assert.Contains(t, env.out.String(), "SGVsbG8=")

	require.NoError(t, env.app.Info(ctx))
	assert.Contains(t, env.out.String(), "text/plain")

	target := filepath.Join(t.TempDir(), "payload.b64")
	require.NoError(t, env.app.Write(ctx, []string{target}))
	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "SGVsbG8=", string(got))

	require.ErrorIs(t, env.app.Write(ctx, nil), common.ErrInvalidTarget)
}

func TestPreview_Text(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "hello.txt", []byte("Hello"))
	require.NoError(t, env.app.Open(ctx, []string{path}))
	env.out.Reset()

	require.NoError(t, env.app.Preview(ctx, nil))
	assert.Contains(t, env.out.String(), "Hello\n")
	assert.Contains(t, env.out.String(), "characters: 5")
}

func TestPreview_DecodeModeNeedsType(t *testing.T) {
	env := newTestEnv(t, "SGVsbG8=\n\n")
	ctx := context.Background()
	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))
	require.NoError(t, env.app.Paste(ctx))

	require.ErrorIs(t, env.app.Preview(ctx, nil), common.ErrPreviewUnavailable)
	assert.Contains(t, env.out.String(), msgNeedsFileType)

	require.NoError(t, env.app.Preview(ctx, []string{"greeting.txt"}))
	assert.Contains(t, env.out.String(), "Hello")
}

func TestPreview_LegacyWordUnavailable(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "old.doc", []byte{0xD0, 0xCF, 0x11, 0xE0})
	require.NoError(t, env.app.Open(ctx, []string{path}))

	require.ErrorIs(t, env.app.Preview(ctx, nil), common.ErrPreviewUnavailable)
	assert.Contains(t, env.out.String(), "[error] "+msgPreviewFailed)
}

func TestEdit_ReplacesPayloadKeepsDescriptor(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "hello.txt", []byte("Hello"))
	require.NoError(t, env.app.Open(ctx, []string{path}))

	env.editor.result = "Hello, world"
	require.NoError(t, env.app.Edit(ctx, nil))

	assert.Equal(t, "Hello", env.editor.got)
	st := env.app.session.Snapshot()
	assert.Equal(t, pipeline.EncodeBytes([]byte("Hello, world")), st.Payload)
	require.NotNil(t, st.Descriptor)
	assert.Equal(t, "hello.txt", st.Descriptor.Name)
	assert.Equal(t, int64(5), st.Descriptor.SizeBytes)
	assert.Contains(t, env.out.String(), "[success] "+msgDocumentSaved)
}

func TestEdit_NoChangeAndEditorError(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "hello.txt", []byte("Hello"))
	require.NoError(t, env.app.Open(ctx, []string{path}))

	env.editor.result = "Hello"
	require.NoError(t, env.app.Edit(ctx, nil))
	assert.Contains(t, env.out.String(), msgNoChanges)

	env.editor.err = errors.New("editor crashed")
	require.Error(t, env.app.Edit(ctx, nil))
	assert.Equal(t, models.Base64Payload("SGVsbG8="), env.app.session.Snapshot().Payload)
}

func TestEdit_DiscardedAfterModeSwitch(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "hello.txt", []byte("Hello"))
	require.NoError(t, env.app.Open(ctx, []string{path}))

	env.editor.result = "Changed"
	env.editor.during = func() { env.app.session.SwitchTo(ctx, models.ModeDecode) }

	require.ErrorIs(t, env.app.Edit(ctx, nil), common.ErrStaleResult)
	st := env.app.session.Snapshot()
	assert.Equal(t, models.ModeDecode, st.Mode)
	assert.True(t, st.Payload.IsEmpty())
	assert.NotContains(t, env.out.String(), msgDocumentSaved)
}

func TestEdit_EmptyTextFileOpensEditor(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "empty.txt", []byte{})
	require.NoError(t, env.app.Open(ctx, []string{path}))

	env.editor.result = "Now filled"
	require.NoError(t, env.app.Edit(ctx, nil))
	assert.Equal(t, "", env.editor.got)
	assert.Equal(t, pipeline.EncodeBytes([]byte("Now filled")), env.app.session.Snapshot().Payload)
	assert.NotContains(t, env.out.String(), msgNothingLoaded)
}

func TestPreview_DecodeModeWithoutTypeListsKnownTypes(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))
	require.NoError(t, env.app.session.CommitDecoded(ctx, env.app.session.Begin(), "SGVsbG8="))

	require.ErrorIs(t, env.app.Preview(ctx, nil), common.ErrPreviewUnavailable)
	assert.Contains(t, env.out.String(), msgNeedsFileType)
	assert.Contains(t, env.out.String(), "Known document types: legacy-word, pdf, text, word")
}

func TestSave_PromptsForNameWhenInteractive(t *testing.T) {
	env := newTestEnv(t, "prompted.txt\n")
	env.app.interactive = true
	ctx := context.Background()
	require.NoError(t, env.app.SwitchMode(ctx, []string{"decode"}))
	require.NoError(t, env.app.session.CommitDecoded(ctx, env.app.session.Begin(), "SGVsbG8="))

	require.NoError(t, env.app.Save(ctx, nil))
	assert.Contains(t, env.out.String(), "File name:")

	got, err := os.ReadFile(filepath.Join(env.outDir, "prompted.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(got))
}

func TestEdit_PDFNotEditable(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	path := env.writeSource(t, "doc.pdf", []byte("%PDF-1.4\n%%EOF"))
	require.NoError(t, env.app.Open(ctx, []string{path}))

	require.ErrorIs(t, env.app.Edit(ctx, nil), common.ErrNotEditable)
	assert.Contains(t, env.out.String(), msgNotEditable)
	assert.Empty(t, env.editor.got)
}

func TestRun_ScriptedSession(t *testing.T) {
	env := newTestEnv(t, "")
	path := env.writeSource(t, "hello.txt", []byte("Hello"))

	script := strings.Join([]string{
		"open " + path,
		"mode decode",
		"help",
		"paste",
		"SGVsbG8=",
		"",
		"save copy.txt",
		"bogus",
		"exit",
	}, "\n") + "\n"

	app, err := NewApp(env.app.config, nil, WithInput(strings.NewReader(script)), WithOutput(env.out))
	require.NoError(t, err)
	app.Run(context.Background())

	got, err := os.ReadFile(filepath.Join(env.outDir, "copy.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", string(got))

	out := env.out.String()
	assert.Contains(t, out, helpDecode)
	assert.Contains(t, out, "Unknown command: bogus")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestFormatPayloadPreview(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "short", in: "SGVsbG8=", limit: 1000, want: "SGVsbG8=\n8 characters"},
		{name: "empty", in: "", limit: 1000, want: "\n0 characters"},
		{name: "exact", in: "abcd", limit: 4, want: "abcd\n4 characters"},
		{name: "truncated", in: "abcdef", limit: 4, want: "abcd...\nPreview showing 4 of 6 characters"},
		{name: "no limit", in: "abcdef", limit: 0, want: "abcdef\n6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPayloadPreview(models.Base64Payload(tt.in), tt.limit))
		})
	}
}

func TestFormatPayloadPreview_DefaultLimit(t *testing.T) {
	p := models.Base64Payload(strings.Repeat("A", 1500))
	got := FormatPayloadPreview(p, 1000)
	assert.True(t, strings.HasPrefix(got, strings.Repeat("A", 1000)+"...\n"))
	assert.True(t, strings.HasSuffix(got, "Preview showing 1000 of 1500 characters"))
}
