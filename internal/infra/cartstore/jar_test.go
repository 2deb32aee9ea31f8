package cartstore

import "net/http"

// ブラウザ代わりのcookie置き場
type testJar struct {
	cookies map[string]*http.Cookie
}

func newTestJar() *testJar {
	return &testJar{cookies: map[string]*http.Cookie{}}
}

func (j *testJar) Cookie(name string) (*http.Cookie, error) {
	c, ok := j.cookies[name]
	if !ok {
		return nil, http.ErrNoCookie
	}
	return c, nil
}

func (j *testJar) SetCookie(c *http.Cookie) {
	if c.MaxAge < 0 {
		delete(j.cookies, c.Name)
		return
	}
	j.cookies[c.Name] = c
}
