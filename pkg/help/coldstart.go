package help

const ColdstartYAML = `# rrc-change-tracker Quick Start

what_it_does: |
  Scans RRC signaling text dumps and reports, per feature, the ordered list
  of distinct values the feature takes. Consecutive repeats collapse into
  one entry; a later change adds a new entry.

feature_kinds:
  scalar: "Whole matched text, e.g. 'freqBandIndicatorNR 256'"
  block: "Brace-delimited body decoded into fields (int, float, string, present)"

commands:
  list_features: |
    rrc-change-tracker features
    rrc-change-tracker features --category Feature

  analyze_selected: |
    rrc-change-tracker analyze --file capture.txt --features nr_band,timers

  analyze_all: |
    rrc-change-tracker analyze --file capture.txt --all --format yaml

  batch: |
    rrc-change-tracker analyze --file day1.txt --file day2.txt --all --workers 4 --output summary.json

catalogs:
  builtin: "Used when --catalog is not set"
  yaml: "rrc-change-tracker analyze --catalog features.yaml ..."
  sqlite: "rrc-change-tracker analyze --catalog features.db ..."
  import: "rrc-change-tracker catalog import --from features.yaml --db features.db"
  export: "rrc-change-tracker catalog export > features.yaml"
  remove: "rrc-change-tracker catalog remove --db features.db timers"

catalog_yaml_layout: |
  features:
    - name: timers
      pattern: 'ue-TimersAndConstants\s*\{(.*?)\}'
      is_block: true
      category: Feature

known_limitations:
  - "Block capture stops at the first closing brace; nested blocks of the same kind are truncated"
  - "Unknown feature names are skipped, not reported as errors"
  - "Features with no occurrences are absent from the result"

error_behavior:
  - "Files that are not UTF-8 fail with error_type decode_error"
  - "One failed file never stops the others"
  - "Exit codes: 0=success, 1=partial or complete failure"
`
