package main

import "html/template"

var page = template.Must(template.New("index").Parse(`
<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>FTP → M3U Generator</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    * { box-sizing: border-box; }
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; max-width: 720px; margin: 40px auto; color: #111; }
    h1 { margin-top: 0; font-size: 22px; }
    input[type="text"] { width: 100%; padding: 10px; border: 1px solid #ddd; border-radius: 8px; }
    .btn { margin-top: 10px; padding: 10px 14px; border: 0; background: #111; color: #fff; border-radius: 8px; cursor: pointer; }
    .btn:disabled { opacity: .5; cursor: not-allowed; }
    .muted { color: #666; font-size: 12px; }
    textarea { width: 100%; height: 400px; margin-top: 15px; font-family: ui-monospace, monospace; }
  </style>
</head>
<body>
  <h1>FTP → M3U Playlist Generator</h1>
  <form onsubmit="return false;">
    <input id="url" type="text" placeholder="Paste FTP folder link here">
    <div class="muted">Recognized: {{range $i, $e := .Exts}}{{if $i}} {{end}}<code>{{$e}}</code>{{end}}</div>
    <button id="gen" type="button" class="btn">Generate</button>
    <button id="dl" type="button" class="btn">Download .m3u</button>
  </form>
  <div id="status" class="muted" style="margin-top:10px;"></div>
  <textarea id="out" readonly></textarea>

<script>
  function folderURL() {
    const u = document.getElementById('url').value.trim();
    if (!u) { alert('Enter folder URL'); return ''; }
    return u;
  }

  document.getElementById('gen').addEventListener('click', async () => {
    const u = folderURL();
    if (!u) return;
    const btn = document.getElementById('gen');
    btn.disabled = true;
    document.getElementById('status').textContent = 'Fetching...';
    try {
      const res = await fetch('/generate?url=' + encodeURIComponent(u));
      document.getElementById('out').value = await res.text();
      document.getElementById('status').textContent = res.ok ? '' : 'HTTP ' + res.status;
    } catch (e) {
      document.getElementById('status').textContent = String(e);
    } finally {
      btn.disabled = false;
    }
  });

  document.getElementById('dl').addEventListener('click', () => {
    const u = folderURL();
    if (!u) return;
    window.location = '/download?url=' + encodeURIComponent(u);
  });
</script>
</body>
</html>
`))
