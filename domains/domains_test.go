package domains_test

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/strongof/domains"
	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/strongtest"
	"github.com/authcorp/libs/go/strongof/validation"
)

func TestFormatExamples(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		check func() bool
	}{
		{"#FF5733", true, strong.From[domains.ColorHex]("#FF5733").IsValidFormat},
		{"ff5733", true, strong.From[domains.ColorHex]("ff5733").IsValidFormat},
		{"#FF573380", true, strong.From[domains.ColorHex]("#FF573380").IsValidFormat},
		{"#12", false, strong.From[domains.ColorHex]("#12").IsValidFormat},
		{"#GG5733", false, strong.From[domains.ColorHex]("#GG5733").IsValidFormat},
		{"978-0-306-40615-7", true, strong.From[domains.Isbn]("978-0-306-40615-7").IsValidFormat},
		{"0-306-40615-2", true, strong.From[domains.Isbn]("0-306-40615-2").IsValidFormat},
		{"9780306406157", true, strong.From[domains.Isbn]("9780306406157").IsValidFormat},
		{"0-306-4061", false, strong.From[domains.Isbn]("0-306-4061").IsValidFormat},
		{"my-blog-post", true, strong.From[domains.Slug]("my-blog-post").IsValidFormat},
		{"My_Blog", false, strong.From[domains.Slug]("My_Blog").IsValidFormat},
		{"double--hyphen", false, strong.From[domains.Slug]("double--hyphen").IsValidFormat},
		{"application/json", true, strong.From[domains.MimeType]("application/json").IsValidFormat},
		{"application/vnd.api+json", true, strong.From[domains.MimeType]("application/vnd.api+json").IsValidFormat},
		{"application", false, strong.From[domains.MimeType]("application").IsValidFormat},
		{".json", true, strong.From[domains.FileExtension](".json").IsValidFormat},
		{".tar.gz", true, strong.From[domains.FileExtension](".tar.gz").IsValidFormat},
		{"json", false, strong.From[domains.FileExtension]("json").IsValidFormat},
		{"/var/log/app.log", true, strong.From[domains.FilePath]("/var/log/app.log").IsValidFormat},
		{"bad|path", false, strong.From[domains.FilePath]("bad|path").IsValidFormat},
		{"ada@example.com", true, strong.From[domains.EmailAddress]("ada@example.com").IsValidFormat},
		{"ada@", false, strong.From[domains.EmailAddress]("ada@").IsValidFormat},
		{"+14155552671", true, strong.From[domains.PhoneNumber]("+14155552671").IsValidFormat},
		{"4155552671", false, strong.From[domains.PhoneNumber]("4155552671").IsValidFormat},
		{"https://example.com/docs?q=1", true, strong.From[domains.Url]("https://example.com/docs?q=1").IsValidFormat},
		{"ftp://example.com", false, strong.From[domains.Url]("ftp://example.com").IsValidFormat},
		{"api.example.com", true, strong.From[domains.Hostname]("api.example.com").IsValidFormat},
		{"-bad.example.com", false, strong.From[domains.Hostname]("-bad.example.com").IsValidFormat},
		{"DE", true, strong.From[domains.CountryCode]("DE").IsValidFormat},
		{"de", false, strong.From[domains.CountryCode]("de").IsValidFormat},
		{"EUR", true, strong.From[domains.CurrencyCode]("EUR").IsValidFormat},
		{"EURO", false, strong.From[domains.CurrencyCode]("EURO").IsValidFormat},
		{"pt-BR", true, strong.From[domains.LanguageCode]("pt-BR").IsValidFormat},
		{"pt_BR", false, strong.From[domains.LanguageCode]("pt_BR").IsValidFormat},
		{"DE89 3704 0044 0532 0130 00", true, strong.From[domains.Iban]("DE89 3704 0044 0532 0130 00").IsValidFormat},
		{"GB82WEST12345698765432", true, strong.From[domains.Iban]("GB82WEST12345698765432").IsValidFormat},
		{"DE88370400440532013000", false, strong.From[domains.Iban]("DE88370400440532013000").IsValidFormat},
		{"1.4.2-rc.1+build.5", true, strong.From[domains.SemVer]("1.4.2-rc.1+build.5").IsValidFormat},
		{"01.4.2", false, strong.From[domains.SemVer]("01.4.2").IsValidFormat},
		{"", false, strong.From[domains.Slug]("").IsValidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.valid {
				t.Errorf("IsValidFormat() = %v, want %v", got, tt.valid)
			}
		})
	}
}

// Property: generated values are always valid and TryCreate keeps them
func TestGeneratedValuesAreValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		checks := map[string]func(string) bool{
			"color": func(s string) bool { _, ok := domains.TryCreate[domains.ColorHex](s); return ok },
			"isbn":  func(s string) bool { _, ok := domains.TryCreate[domains.Isbn](s); return ok },
			"slug":  func(s string) bool { _, ok := domains.TryCreate[domains.Slug](s); return ok },
			"mime":  func(s string) bool { _, ok := domains.TryCreate[domains.MimeType](s); return ok },
			"ext":   func(s string) bool { _, ok := domains.TryCreate[domains.FileExtension](s); return ok },
			"path":  func(s string) bool { _, ok := domains.TryCreate[domains.FilePath](s); return ok },
			"email": func(s string) bool { _, ok := domains.TryCreate[domains.EmailAddress](s); return ok },
			"phone": func(s string) bool { _, ok := domains.TryCreate[domains.PhoneNumber](s); return ok },
			"url":   func(s string) bool { _, ok := domains.TryCreate[domains.Url](s); return ok },
			"host":  func(s string) bool { _, ok := domains.TryCreate[domains.Hostname](s); return ok },
			"iban":  func(s string) bool { _, ok := domains.TryCreate[domains.Iban](s); return ok },
			"semver": func(s string) bool {
				_, ok := domains.TryCreate[domains.SemVer](s)
				return ok
			},
		}
		gens := map[string]*rapid.Generator[string]{
			"color":  strongtest.ColorHexGen(),
			"isbn":   strongtest.IsbnGen(),
			"slug":   strongtest.SlugGen(),
			"mime":   strongtest.MimeTypeGen(),
			"ext":    strongtest.FileExtensionGen(),
			"path":   strongtest.FilePathGen(),
			"email":  strongtest.EmailGen(),
			"phone":  strongtest.PhoneNumberGen(),
			"url":    strongtest.UrlGen(),
			"host":   strongtest.HostnameGen(),
			"iban":   strongtest.IbanGen(),
			"semver": strongtest.SemVerGen(),
		}
		name := rapid.SampledFrom([]string{"color", "isbn", "slug", "mime", "ext", "path", "email", "phone", "url", "host", "iban", "semver"}).Draw(t, "type")
		raw := gens[name].Draw(t, "raw")
		if !checks[name](raw) {
			t.Fatalf("%s: generated %q rejected", name, raw)
		}
	})
}

// Property: TryCreate never panics and agrees with IsValidFormat
func TestTryCreateAgreesWithIsValidFormat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		color, ok := domains.TryCreate[domains.ColorHex](raw)
		if ok != strong.From[domains.ColorHex](raw).IsValidFormat() {
			t.Fatalf("TryCreate(%q) ok=%v disagrees with IsValidFormat", raw, ok)
		}
		if ok && color.Value() != raw {
			t.Fatalf("TryCreate changed the value: %q -> %q", raw, color.Value())
		}
		if !ok && !color.IsEmpty() {
			t.Fatal("failed TryCreate should yield the zero value")
		}
		if got := domains.TryCreateOption[domains.Slug](raw).IsSome(); got != strong.From[domains.Slug](raw).IsValidFormat() {
			t.Fatalf("TryCreateOption(%q) = %v", raw, got)
		}
	})
}

// Property: Slugify always yields a valid slug when the text has letters or digits
func TestSlugifyProducesSlugs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[A-Za-zÀ-ÿ0-9]{1,6}`), 1, 5).Draw(t, "words")
		sep := rapid.SampledFrom([]string{" ", "_", " - ", ", ", "!!"}).Draw(t, "sep")
		text := ""
		for i, w := range words {
			if i > 0 {
				text += sep
			}
			text += w
		}
		slug := domains.Slugify(text)
		if !slug.IsBlank() && !slug.IsValidFormat() {
			t.Fatalf("Slugify(%q) = %q is not a slug", text, slug)
		}
	})

	tests := map[string]string{
		"My Blog Post":            "my-blog-post",
		"  Crème Brûlée, 2024! ":  "creme-brulee-2024",
		"already-a-slug":          "already-a-slug",
		"Ünïcödé___and   spaces": "unicode-and-spaces",
	}
	for in, want := range tests {
		if got := domains.Slugify(in).Value(); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseReportsValidationError(t *testing.T) {
	_, err := domains.Parse[domains.MimeType]("application")
	if !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "MimeType" || verr.Code != validation.CodeFormat || verr.Value != "application" {
		t.Fatalf("unexpected detail: %+v", verr)
	}

	_, err = domains.Parse[domains.EmailAddress]("ada(at)example.com")
	if !errors.As(err, &verr) || verr.Field != "EmailAddress" || verr.Value != nil {
		t.Fatalf("personal data should not be echoed: %+v", verr)
	}
	if result := domains.Validate(strong.From[domains.PhoneNumber]("555-0100")); result.IsValid() || result.Errors()[0].Value != nil {
		t.Fatalf("personal data should not be echoed: %+v", result.Errors())
	}

	_, err = domains.Parse[domains.Iban]("DE88370400440532013000")
	if !errors.As(err, &verr) || verr.Code != validation.CodeChecksum {
		t.Fatalf("expected checksum failure, got %v", err)
	}

	_, err = domains.Parse[domains.Slug]("   ")
	if !errors.As(err, &verr) || verr.Code != validation.CodeRequired {
		t.Fatalf("expected required failure, got %v", err)
	}

	slug, err := domains.Parse[domains.Slug]("ok")
	if err != nil || slug.Value() != "ok" {
		t.Fatalf("Parse(ok) = %v, %v", slug, err)
	}

	result := domains.Validate(strong.From[domains.EmailAddress]("nope"))
	if result.IsValid() || result.ErrorMap()["EmailAddress"] == nil {
		t.Fatalf("Validate = %v", result.ErrorMessages())
	}
	if !domains.Validate(strong.From[domains.EmailAddress]("ada@example.com")).IsValid() {
		t.Fatal("valid email rejected")
	}
}

type TicketCode struct{ strong.Text[TicketCode] }

func (c TicketCode) IsValidFormat() bool { return c.Len() == 6 }

func TestCallerDefinedTypes(t *testing.T) {
	if _, ok := domains.TryCreate[TicketCode]("ABC123"); !ok {
		t.Fatal("six characters should be valid")
	}
	_, err := domains.Parse[TicketCode]("ABC")
	var verr *validation.ValidationError
	if !errors.As(err, &verr) || verr.Field != "TicketCode" || verr.Code != validation.CodeFormat {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHelpers(t *testing.T) {
	color := strong.From[domains.ColorHex]("ff5733")
	if got := color.Normalized().Value(); got != "#FF5733" {
		t.Errorf("Normalized() = %q", got)
	}
	if r, g, b, ok := color.RGB(); !ok || r != 0xFF || g != 0x57 || b != 0x33 {
		t.Errorf("RGB() = %d %d %d %v", r, g, b, ok)
	}
	if a, ok := strong.From[domains.ColorHex]("#FF573380").Alpha(); !ok || a != 0x80 {
		t.Errorf("Alpha() = %d %v", a, ok)
	}
	if _, _, _, ok := strong.From[domains.ColorHex]("#12").RGB(); ok {
		t.Error("RGB() of invalid color should fail")
	}

	isbn13 := strong.From[domains.Isbn]("978-0-306-40615-7")
	isbn10 := strong.From[domains.Isbn]("0-306-40615-2")
	if !isbn13.IsIsbn13() || isbn13.IsIsbn10() || !isbn10.IsIsbn10() || isbn10.IsIsbn13() {
		t.Error("ISBN kind detection failed")
	}
	if got := isbn13.Compact().Value(); got != "9780306406157" {
		t.Errorf("Compact() = %q", got)
	}

	mime := strong.From[domains.MimeType]("application/json")
	if mime.Type() != "application" || mime.Subtype() != "json" {
		t.Errorf("Type/Subtype = %q/%q", mime.Type(), mime.Subtype())
	}

	if got := strong.From[domains.FileExtension](".tar.gz").WithoutDot(); got != "tar.gz" {
		t.Errorf("WithoutDot() = %q", got)
	}
	path := strong.From[domains.FilePath]("/var/log/app.log")
	if path.Base() != "app.log" || path.Dir().Value() != "/var/log" || path.Extension().Value() != ".log" {
		t.Errorf("path helpers: %q %q %q", path.Base(), path.Dir(), path.Extension())
	}

	email := strong.From[domains.EmailAddress](" Ada@Example.COM ")
	if got := email.Normalized(); got.Value() != "ada@example.com" || got.LocalPart() != "ada" || got.Domain() != "example.com" {
		t.Errorf("email helpers: %q", got)
	}

	phone, ok := domains.NormalizePhoneNumber("+1 (415) 555-2671")
	if !ok || phone.Value() != "+14155552671" || phone.Digits() != "14155552671" {
		t.Errorf("NormalizePhoneNumber = %q, %v", phone, ok)
	}

	u := strong.From[domains.Url]("HTTPS://Example.com:8443/a")
	if u.Scheme() != "https" || u.Host() != "Example.com:8443" {
		t.Errorf("url helpers: %q %q", u.Scheme(), u.Host())
	}

	if tag := strong.From[domains.LanguageCode]("pt-BR").Tag(); tag.String() != "pt-BR" {
		t.Errorf("Tag() = %v", tag)
	}
	for _, invalid := range []string{"pt_BR", "PT-br", ""} {
		if tag := strong.From[domains.LanguageCode](invalid).Tag(); tag != language.Und {
			t.Errorf("Tag() of invalid code %q = %v", invalid, tag)
		}
	}
	if unit, err := strong.From[domains.CurrencyCode]("EUR").Unit(); err != nil || unit.String() != "EUR" {
		t.Errorf("Unit() = %v, %v", unit, err)
	}

	iban := strong.From[domains.Iban]("DE89 3704 0044 0532 0130 00")
	if iban.Compact().Value() != "DE89370400440532013000" || iban.CountryCode().Value() != "DE" {
		t.Errorf("iban helpers: %q %q", iban.Compact(), iban.CountryCode())
	}

	major, minor, patch, ok := strong.From[domains.SemVer]("1.4.2-rc.1+build.5").Core()
	if !ok || major != 1 || minor != 4 || patch != 2 {
		t.Errorf("Core() = %d.%d.%d %v", major, minor, patch, ok)
	}
	v := strong.From[domains.SemVer]("1.4.2-rc.1+build.5")
	if v.Prerelease() != "rc.1" || v.Build() != "build.5" {
		t.Errorf("Prerelease/Build = %q %q", v.Prerelease(), v.Build())
	}
}

func TestRegistry(t *testing.T) {
	descriptors := domains.Descriptors()
	if len(descriptors) != 15 {
		t.Fatalf("len(Descriptors()) = %d, want 15", len(descriptors))
	}
	for i, d := range descriptors {
		if i > 0 && descriptors[i-1].Name >= d.Name {
			t.Fatalf("descriptors not sorted at %s", d.Name)
		}
		if err := d.Validate(d.Example); err != nil {
			t.Errorf("%s example %q is invalid: %v", d.Name, d.Example, err)
		}
		if d.Pattern == "" {
			t.Errorf("%s has no pattern", d.Name)
		}
	}

	d, ok := domains.Lookup("colorhex")
	if !ok || d.Name != "ColorHex" {
		t.Fatalf("Lookup(colorhex) = %+v, %v", d, ok)
	}
	w, err := d.Create("#ABCDEF")
	if err != nil {
		t.Fatal(err)
	}
	if _, isColor := w.(domains.ColorHex); !isColor || w.String() != "#ABCDEF" {
		t.Fatalf("Create returned %T %q", w, w)
	}
	if err := d.Validate("#12"); !errors.Is(err, validation.ErrInvalid) {
		t.Fatalf("Validate(#12) = %v", err)
	}
	missing, ok := domains.Lookup("nope")
	if ok {
		t.Fatal("unknown name should not resolve")
	}
	if err := missing.Validate("anything"); !errors.Is(err, domains.ErrUnregistered) {
		t.Fatalf("zero Descriptor Validate = %v", err)
	}
	if w, err := (domains.Descriptor{}).Create("x"); w != nil || !errors.Is(err, domains.ErrUnregistered) {
		t.Fatalf("zero Descriptor Create = %v, %v", w, err)
	}
}
