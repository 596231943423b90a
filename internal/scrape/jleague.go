package scrape

import (
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jleague-data-mcp/internal/ledger"
	"jleague-data-mcp/internal/names"
)

const siteBase = "https://data.j-league.or.jp"

// competitionIDs are the site's internal ids for the league standings
// pages; the league codes are the canonical ones from internal/names.
var competitionIDs = map[string]string{
	"J1": "651",
	"J2": "655",
	"J3": "657",
}

// competitionLabels are the sponsored labels the site expects in the
// standings query string.
var competitionLabels = map[string]string{
	"J1": "明治安田Ｊ１リーグ",
	"J2": "明治安田Ｊ２リーグ",
	"J3": "明治安田Ｊ３リーグ",
}

// StandingsURL returns the standings page URL for a league code and
// season year. Unknown league codes are an error: there is no standings
// page to guess at.
func StandingsURL(league string, year int) (string, error) {
	id, ok := competitionIDs[league]
	if !ok {
		return "", fmt.Errorf("no standings page for league %q", league)
	}
	q := url.Values{}
	q.Set("competitionSectionIdLabel", "最新節")
	q.Set("competitionIdLabel", competitionLabels[league])
	q.Set("yearIdLabel", strconv.Itoa(year))
	q.Set("yearId", strconv.Itoa(year))
	q.Set("competitionId", id)
	q.Set("competitionSectionId", "0")
	q.Set("search", "search")
	return siteBase + "/SFRT01/?" + q.Encode(), nil
}

// ScheduleURL returns the season schedule URL covering the J1, J2 and
// J3 frames.
func ScheduleURL(year int) string {
	q := url.Values{}
	q.Set("competition_years", strconv.Itoa(year))
	q.Set("tv_relay_station_name", "")
	// Frame ids 1..3 select J1/J2/J3; url.Values supports the repeats.
	q["competition_frame_ids"] = []string{"1", "2", "3"}
	return siteBase + "/SFMS01/search?" + q.Encode()
}

// StandingsRow is one published league-table row with canonical names
// and numeric cells coerced to integers.
type StandingsRow struct {
	League       string `json:"league"`
	Rank         int    `json:"rank"`
	Team         string `json:"team"`
	Points       int    `json:"points"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Drawn        int    `json:"drawn"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
}

// ParseStandings extracts the standings table (the one headed by 順位)
// from a standings page and tags every row with the given league code.
// A page with no recognizable table yields nil — no data, not an error.
func ParseStandings(doc *goquery.Document, league string) []StandingsRow {
	tbl := findTable(doc, "順位")
	if tbl == nil {
		return nil
	}
	header, rows := tableCells(tbl)

	rankCol := columnIndex(header, "順位")
	teamCol := columnIndex(header, "クラブ")
	if teamCol < 0 {
		teamCol = columnIndex(header, "チーム")
	}
	ptsCol := columnIndex(header, "勝点")
	playedCol := columnIndex(header, "試合")
	wonCol := columnIndex(header, "勝")
	drawnCol := columnIndex(header, "分")
	lostCol := columnIndex(header, "敗")
	gfCol := columnIndex(header, "得点")
	gaCol := columnIndex(header, "失点")
	gdCol := columnIndex(header, "得失")

	// 勝 alone also matches 勝点; prefer the standalone column when the
	// header carries both.
	if wonCol == ptsCol {
		wonCol = exactColumnIndex(header, "勝")
	}

	out := make([]StandingsRow, 0, len(rows))
	for _, row := range rows {
		team := names.Normalize(cellAt(row, teamCol))
		if team == "" {
			continue
		}
		out = append(out, StandingsRow{
			League:       league,
			Rank:         atoiOrZero(cellAt(row, rankCol)),
			Team:         team,
			Points:       atoiOrZero(cellAt(row, ptsCol)),
			Played:       atoiOrZero(cellAt(row, playedCol)),
			Won:          atoiOrZero(cellAt(row, wonCol)),
			Drawn:        atoiOrZero(cellAt(row, drawnCol)),
			Lost:         atoiOrZero(cellAt(row, lostCol)),
			GoalsFor:     atoiOrZero(cellAt(row, gfCol)),
			GoalsAgainst: atoiOrZero(cellAt(row, gaCol)),
			GoalDiff:     atoiOrZero(cellAt(row, gdCol)),
		})
	}
	return out
}

// scheduleColumns are the schedule-table headers this service consumes,
// in the order the site publishes them.
var scheduleColumns = []string{"大会", "試合日", "キックオフ", "スタジアム", "ホーム", "スコア", "アウェイ", "テレビ中継"}

// ParseSchedule extracts the fixture table (the one headed by 試合日)
// into raw fixture rows with canonical league and team names. Score and
// date stay raw: filtering and parsing them is the ledger builder's
// job. When fewer than five of the expected columns are present the
// site layout has changed too much to trust, and nil is returned.
func ParseSchedule(doc *goquery.Document) []ledger.RawFixture {
	tbl := findTable(doc, "試合日")
	if tbl == nil {
		return nil
	}
	header, rows := tableCells(tbl)

	idx := make(map[string]int, len(scheduleColumns))
	present := 0
	for _, col := range scheduleColumns {
		i := columnIndex(header, col)
		idx[col] = i
		if i >= 0 {
			present++
		}
	}
	if present < 5 {
		log.Printf("scrape: schedule table has only %d of %d expected columns, treating as layout change", present, len(scheduleColumns))
		return nil
	}

	out := make([]ledger.RawFixture, 0, len(rows))
	for _, row := range rows {
		f := ledger.RawFixture{
			League:    names.Normalize(cellAt(row, idx["大会"])),
			Date:      cellAt(row, idx["試合日"]),
			Kickoff:   cellAt(row, idx["キックオフ"]),
			Venue:     cellAt(row, idx["スタジアム"]),
			Home:      names.Normalize(cellAt(row, idx["ホーム"])),
			Score:     cellAt(row, idx["スコア"]),
			Away:      names.Normalize(cellAt(row, idx["アウェイ"])),
			Broadcast: cellAt(row, idx["テレビ中継"]),
		}
		if f.Home == "" && f.Away == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// exactColumnIndex matches a header cell exactly, for short headers
// like 勝 that substring-match longer ones.
func exactColumnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// atoiOrZero coerces a numeric cell, treating anything non-parseable
// (dashes, empty cells, annotations) as 0.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
