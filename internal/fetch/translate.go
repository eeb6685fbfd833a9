package fetch

import (
	"fmt"
	"strings"
)

// Translate rewrites curl-style header/authentication arguments into the
// equivalent yt-dlp flags, so a copied-from-devtools curl command line
// can drive a download. Unknown flags are rejected by name rather than
// silently dropped, since a missing auth header usually means a broken
// download later.
func Translate(curlArgs []string) ([]string, error) {
	var out []string

	i := 0
	next := func(flag string) (string, error) {
		i++
		if i >= len(curlArgs) {
			return "", fmt.Errorf("flag %s needs a value", flag)
		}
		return curlArgs[i], nil
	}

	for ; i < len(curlArgs); i++ {
		arg := curlArgs[i]
		switch arg {
		case "-H", "--header":
			v, err := next(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, "--add-header", v)
		case "-u", "--user":
			v, err := next(arg)
			if err != nil {
				return nil, err
			}
			user, pass, ok := strings.Cut(v, ":")
			if !ok {
				return nil, fmt.Errorf("flag %s wants user:password, got %q", arg, v)
			}
			out = append(out, "--username", user, "--password", pass)
		case "-A", "--user-agent":
			v, err := next(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, "--user-agent", v)
		case "-e", "--referer":
			v, err := next(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, "--referer", v)
		case "-b", "--cookie":
			v, err := next(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, "--add-header", "Cookie: "+v)
		case "-x", "--proxy":
			v, err := next(arg)
			if err != nil {
				return nil, err
			}
			out = append(out, "--proxy", v)
		case "--compressed", "-L", "--location", "-s", "--silent":
			// Transfer-level curl flags with no yt-dlp counterpart needed:
			// yt-dlp follows redirects and negotiates encoding itself.
		default:
			return nil, fmt.Errorf("unsupported curl flag %q", arg)
		}
	}

	return out, nil
}
