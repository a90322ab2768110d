package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUrgent(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"urgent: reply needed", true},
		{"please respond immediately", true},
		{"your session expires soon", true},
		{"this is your last warning", true},
		{"you must confirm your details", true},
		{"your account has been suspended", true},
		{"respond within 24 hours", true},
		{"see you at the meeting tomorrow", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, urgent(tt.text))
		})
	}
}

func TestSensitive(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"enter your password to continue", true},
		{"we need your credit card number", true},
		{"provide your ssn for verification", true},
		{"share the otp you received", true},
		{"confirm your bank account details", true},
		{"enter the cvv on the back of the card", true},
		{"what time works for the call?", false},
		{"the continent is large", false}, // "tin" must not match inside a word
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, sensitive(tt.text))
		})
	}
}

func TestLinkPredicates(t *testing.T) {
	assert.True(t, httpIPURL("visit http://192.168.1.1/login now"))
	assert.True(t, httpIPURL("https://10.0.0.5/admin"))
	assert.False(t, httpIPURL("https://example.com/192-guide"))

	assert.True(t, plainHTTP("go to http://example.com"))
	assert.False(t, plainHTTP("go to https://example.com"))

	assert.True(t, shortener("https://bit.ly/abc"))
	assert.True(t, shortener("http://tinyurl.com/xyz"))
	assert.True(t, shortener("https://t.co/q1"))
	assert.False(t, shortener("https://bitly-competitor.example.com"))
}

func TestSuspiciousTLD(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"my-bank-login.tk", true},
		{"http://rewards.xyz/claim", true},
		{"promo.club", true},
		{"cheap.loan", true},
		{"example.com", false},
		{"network.tkinter.dev", false}, // tk must be the whole label
		{"proxyz.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, suspiciousTLD(tt.text))
		})
	}
}

func TestDoubleExt(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"invoice.pdf.exe", true},
		{"photo.jpg.zip", true}, // benign archive shape still matches, kept deliberately
		{"malware.scr", true},
		{"setup.exe", true},
		{"script.vbs", true},
		{"report.pdf", false},
		{"archive.zip", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, doubleExt(tt.name))
		})
	}
}

func TestURLPath(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.amazon.com", ""},
		{"https://www.amazon.com/", "/"},
		{"https://cdn.example.com/downloads/setup.exe", "/downloads/setup.exe"},
		{"example.com/file.exe", "/file.exe"},
		{"example.com", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, urlPath(tt.url))
		})
	}
}

func TestPrivateRange(t *testing.T) {
	tests := []struct {
		addr     string
		expected bool
	}{
		{"10.0.0.1", true},
		{"10.255.255.255", true},
		{"172.16.0.1", true},
		{"172.31.99.4", true},
		{"192.168.1.5", true},
		{"172.15.0.1", false},
		{"172.32.0.1", false},
		{"192.169.0.1", false},
		{"8.8.8.8", false},
		{"256.1.1.1", false},
		{"not-an-ip", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.expected, privateRange(tt.addr))
		})
	}
}

func TestKnownGoodIP(t *testing.T) {
	assert.True(t, knownGoodIP("8.8.8.8"))
	assert.True(t, knownGoodIP("1.1.1.1"))
	assert.True(t, knownGoodIP("140.82.121.3"))
	assert.False(t, knownGoodIP("8.8.4.4"))
}

func TestFileTypePredicates(t *testing.T) {
	assert.True(t, executableName("tool.exe"))
	assert.True(t, executableName("macro.bat"))
	assert.False(t, executableName("tool.exe.txt"))

	assert.True(t, executableMime("application/x-msdownload"))
	assert.True(t, executableMime("text/javascript"))
	assert.False(t, executableMime("application/pdf"))

	assert.True(t, archiveName("backup.rar"))
	assert.True(t, archiveName("bundle.7z"))
	assert.False(t, archiveName("image.png"))

	assert.True(t, archiveMime("application/zip"))
	assert.False(t, archiveMime("text/plain"))
}

func TestDescriptionFlag(t *testing.T) {
	assert.True(t, descriptionFlag("a classic phishing attempt"))
	assert.True(t, descriptionFlag("fake login page"))
	assert.True(t, descriptionFlag("known fraud campaign"))
	assert.True(t, descriptionFlag("obvious scam"))
	assert.False(t, descriptionFlag("legitimate newsletter"))
	assert.False(t, descriptionFlag(""))
}
