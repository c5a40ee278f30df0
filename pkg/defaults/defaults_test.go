package defaults

import "testing"

func TestTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Error("connect timeout must be shorter than the total request timeout")
	}
	if HTTPResponseHeaderTimeout >= HTTPClientTimeout {
		t.Error("header timeout must be shorter than the total request timeout")
	}
}

func TestCacheFilePrivate(t *testing.T) {
	if CacheFileMode&0o077 != 0 {
		t.Errorf("cache file mode %o should not be group or world accessible", CacheFileMode)
	}
}
