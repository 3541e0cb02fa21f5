package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	configBlockPattern = regexp.MustCompile(`const CONFIG = \{[\s\S]*?\};`)
	titlePattern       = regexp.MustCompile(`<title>[\s\S]*?</title>`)
	heroPattern        = regexp.MustCompile(`<div class="hero-photo-placeholder">[\s\S]*?</div>`)
)

// InjectContent writes the config object, document title and hero photo
// into the template text. Purely textual: the templates are curated
// in-repo assets with fixed markers, not arbitrary HTML. Missing markers
// are left as-is, never an error.
func InjectContent(html string, cfg Config) string {
	serialized, err := json.MarshalIndent(cfg, "", "        ")
	if err == nil {
		html = configBlockPattern.ReplaceAllLiteralString(html, "const CONFIG = "+string(serialized)+";")
	}

	title := cfg.Music.Title
	if title == "" {
		title = "Wedding Invitation"
	}
	title = strings.ReplaceAll(title, "<", "&lt;")
	html = titlePattern.ReplaceAllLiteralString(html, "<title>"+title+"</title>")

	if cfg.HeroPhotoURL != "" {
		src := strings.ReplaceAll(cfg.HeroPhotoURL, `"`, "&quot;")
		img := `<img class="hero-photo-img" src="` + src + `" alt="photo">`
		html = heroPattern.ReplaceAllLiteralString(html, img)
	}
	return html
}

// InjectRSVP appends the guest-response submit handler. The script
// validates name and phone, clamps the guest count against the limit and
// posts a single attempt to the invite's response endpoint.
func InjectRSVP(html string, inviteID string, maxGuests int) string {
	if inviteID == "" {
		return html
	}
	script := fmt.Sprintf(rsvpScript, inviteID, maxGuests)
	return appendBeforeBodyEnd(html, script)
}

const rsvpScript = `
<script>
    (function () {
        var form = document.getElementById('rsvpForm');
        if (!form) return;
        form.addEventListener('submit', function (event) {
            event.preventDefault();

            var nameEl = document.getElementById('rName');
            var phoneEl = document.getElementById('rPhone');
            var noteEl = document.getElementById('rNote');
            var successEl = document.getElementById('successMsg');
            if (!nameEl || !phoneEl || !successEl) return;

            var name = (nameEl.value || '').trim();
            var phone = (phoneEl.value || '').trim();
            if (!name) { nameEl.focus(); return; }
            if (!phone) { phoneEl.focus(); return; }

            var err = document.getElementById('rsvpError');
            if (!err) {
                err = document.createElement('div');
                err.id = 'rsvpError';
                err.className = 'rsvp-error';
                form.insertBefore(err, form.querySelector('.submit-btn'));
            }
            err.textContent = '';

            var active = document.querySelector('.guest-opt.selected');
            var guests = Number(active && active.dataset ? active.dataset.val : 1) || 1;
            var maxGuests = %[2]d;
            if (guests < 1) guests = 1;
            if (maxGuests > 0 && guests > maxGuests) guests = maxGuests;

            fetch('/api/v1/invites/%[1]s/respond', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({
                    guestName: name,
                    phone: phone,
                    guestsCount: guests,
                    attending: true,
                    note: noteEl ? (noteEl.value || '').trim() : ''
                })
            }).then(function (res) {
                if (!res.ok) {
                    return res.json().catch(function () { return {}; }).then(function (data) {
                        throw new Error(data.message || 'Жауапты жіберу мүмкін болмады');
                    });
                }
                form.style.display = 'none';
                successEl.style.display = 'block';
            }).catch(function (e) {
                err.textContent = e.message || 'Жауапты жіберу мүмкін болмады';
            });
        });
    })();
</script>
`

// InjectAutoplay appends music autoplay and the slow scroll-through.
// Public view only; the editor preview stays silent and still. Playback
// failures are swallowed: this is decoration, not function.
func InjectAutoplay(html string, view bool) string {
	if !view {
		return html
	}
	return appendBeforeBodyEnd(html, autoplayScript)
}

const autoplayScript = `
<script>
    (function () {
        if (window.top !== window.self) return;

        var audio = document.getElementById('bgMusic');
        if (!audio && typeof CONFIG !== 'undefined' && CONFIG.music && CONFIG.music.url) {
            audio = new Audio(CONFIG.music.url);
            audio.loop = true;
        }

        function tryPlay() {
            if (!audio) return;
            var p = audio.play();
            if (p && p.catch) {
                p.catch(function () {
                    var once = function () {
                        audio.play().catch(function () {});
                        document.removeEventListener('pointerdown', once);
                        document.removeEventListener('touchstart', once);
                    };
                    document.addEventListener('pointerdown', once);
                    document.addEventListener('touchstart', once);
                });
            }
        }

        var cancelled = false;
        function cancelScroll() { cancelled = true; }
        ['wheel', 'touchstart', 'pointerdown', 'keydown'].forEach(function (ev) {
            window.addEventListener(ev, cancelScroll, { passive: true, once: true });
        });

        function autoScroll() {
            var last = null;
            function step(ts) {
                if (cancelled) return;
                if (last !== null) {
                    window.scrollBy(0, (ts - last) * 0.03);
                    if (window.innerHeight + window.scrollY >= document.body.scrollHeight - 2) return;
                }
                last = ts;
                requestAnimationFrame(step);
            }
            requestAnimationFrame(step);
        }

        window.addEventListener('load', function () {
            tryPlay();
            setTimeout(autoScroll, 2500);
        });
    })();
</script>
`

// InjectLiveBridge appends the listener that lets the editing host patch
// the rendered document in place. Messages older than the last applied
// version are ignored; the embedded config is applied immediately so an
// early host message is never required.
func InjectLiveBridge(html string) string {
	return appendBeforeBodyEnd(html, liveBridgeScript)
}

const liveBridgeScript = `
<script>
    (function () {
        var lastVersion = -1;

        function setText(id, value) {
            var el = document.getElementById(id);
            if (el && value != null) el.textContent = value;
        }

        function apply(cfg) {
            if (!cfg) return;
            if (typeof cfg.version === 'number') {
                if (cfg.version < lastVersion) return;
                lastVersion = cfg.version;
            }
            setText('groomName', cfg.names && cfg.names.groom);
            setText('brideName', cfg.names && cfg.names.bride);
            setText('eventDay', cfg.day);
            setText('eventHour', cfg.hour);
            setText('eventLocation', cfg.location);
            setText('inviteDescription', cfg.description);
            setText('toiOwners', cfg.toiOwners);

            var mapLink = document.getElementById('mapLink');
            if (mapLink && cfg.locationUrl) mapLink.href = cfg.locationUrl;

            var hero = document.querySelector('.hero-photo-img');
            if (hero && cfg.heroPhotoUrl) hero.src = cfg.heroPhotoUrl;

            var slides = document.querySelectorAll('.gallery-slide img');
            (cfg.gallery || []).forEach(function (url, i) {
                if (slides[i]) slides[i].src = url;
            });
        }

        window.addEventListener('message', function (event) {
            var data = event.data || {};
            if (data.type === 'UPDATE_CONFIG') apply(data.config);
        });

        if (typeof CONFIG !== 'undefined') apply(CONFIG);
    })();
</script>
`

func appendBeforeBodyEnd(html, script string) string {
	if strings.Contains(html, "</body>") {
		return strings.Replace(html, "</body>", script+"\n</body>", 1)
	}
	return html + script
}
