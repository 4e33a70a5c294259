package sql

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/register_source_file.sql
var RegisterSourceFile string

//go:embed queries/lookup_source_file.sql
var LookupSourceFile string

//go:embed queries/has_complete_run.sql
var HasCompleteRun string

//go:embed queries/create_run.sql
var CreateRun string

//go:embed queries/update_run_status.sql
var UpdateRunStatus string

//go:embed queries/finish_run.sql
var FinishRun string

//go:embed queries/delete_runs_for_file.sql
var DeleteRunsForFile string

//go:embed queries/deactivate_older_runs.sql
var DeactivateOlderRuns string

//go:embed queries/activate_run.sql
var ActivateRun string

//go:embed queries/analyze_scores.sql
var AnalyzeScores string

//go:embed queries/analyze_deltas.sql
var AnalyzeDeltas string
