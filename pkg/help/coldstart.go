package help

const ColdstartYAML = `# diary-logs Quick Start

sources:
  file: "Saved diary page (HTML as rendered in the browser)"
  url: "Live diary page, cached on disk for --max-age (default 1h)"
  stdin: "Pass - and pipe the page HTML in"

commands:
  extract: |
    diary-logs extract diary.html
    diary-logs extract --format yaml https://example.com/diary

  export: |
    diary-logs export diary.html
    diary-logs export --exclude 2,4 diary.html
    diary-logs export --copy --quiet diary.html

  pick: |
    diary-logs pick diary.html

  history: |
    diary-logs extract --record diary.html
    diary-logs history list
    diary-logs history show 3
    diary-logs export --snapshot 3

pick_keys:
  up_down: "Move the cursor (also k/j)"
  space: "Toggle the row under the cursor (also x)"
  c: "Copy the export text (only once data has loaded)"
  q: "Quit"

output:
  extract: '[{"time": 60, "memo": "coding"}, ...] or null when the page has no diary container'
  export: "One line per kept record: <duration>\\t-\\t<memo>"
  durations: "90 -> 1h 30m, 60 -> 1h, 45 -> 45m, 0 -> empty"

layouts:
  list: "Each memo occurrence counts as one unit (10 minutes by default)"
  grid: "Each header counts col-md-N / 2 units"
  unknown: "Empty result, nothing is logged"

config_file: |
  # diary-logs --config diary.yaml ...
  selectors:
    container: '[ng-if="data && data.snapshots"]'
    discriminator: ng-switch-when
    list_item: .o-memo-container span
    grid_row: '[headers="minutesData.headers"]'
    grid_header: .o-header
    grid_label: .o-memo-container span
  minutes_per_unit: 10
  cache_dir: .diary-logs-cache
  max_age: 1h
  db_path: ""   # empty = diary-logs.db next to the binary

logging:
  - "JSON logs on stderr, data on stdout"
  - "--quiet drops everything below error"
  - "pick logs nothing while the checklist is open"

exclusions:
  - "Exclusions are positions, not labels"
  - "They are never stored and reset on every run"
`
