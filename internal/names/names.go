// Package names canonicalizes league and team labels scraped from the
// J.League data site. The site mixes fullwidth and halfwidth forms
// ("Ｊ１" vs "J1", "Ｆ東京" vs "FC東京") and has renamed competitions
// several times, so every raw label is folded and then resolved through
// static alias tables before any downstream grouping.
package names

import (
	"strings"

	"golang.org/x/text/width"
)

// residual covers characters the generic width fold leaves untouched but
// that still show up in scraped labels.
var residual = strings.NewReplacer(
	"−", "-", // minus sign used as a dash in some score cells
	"〜", "~", // wave dash
)

// leagueAliases maps historical and sponsored competition labels to the
// short codes used throughout this service. Keys are post-fold forms.
// Growing this table is routine maintenance; add the folded label here
// and nothing else.
var leagueAliases = map[string]string{
	"明治安田J1リーグ":     "J1",
	"明治安田J2リーグ":     "J2",
	"明治安田J3リーグ":     "J3",
	"明治安田生命J1リーグ":   "J1",
	"明治安田生命J2リーグ":   "J2",
	"明治安田生命J3リーグ":   "J3",
	"J1リーグ":          "J1",
	"J2リーグ":          "J2",
	"J3リーグ":          "J3",
	"JリーグYBCルヴァンカップ": "ルヴァンカップ",
	"YBCルヴァンカップ":     "ルヴァンカップ",
	"ルヴァンカップ":        "ルヴァンカップ",
}

// teamAliases maps the abbreviated club names used in the schedule table
// (and a few historical names) to full club names. Keys are post-fold
// forms; unmapped labels pass through Normalize unchanged, so a newly
// promoted club missing here is harmless until the table catches up.
var teamAliases = map[string]string{
	"浦和":        "浦和レッズ",
	"F東京":       "FC東京",
	"川崎F":       "川崎フロンターレ",
	"G大阪":       "ガンバ大阪",
	"C大阪":       "セレッソ大阪",
	"鹿島":        "鹿島アントラーズ",
	"横浜FM":      "横浜F・マリノス",
	"名古屋":       "名古屋グランパス",
	"広島":        "サンフレッチェ広島",
	"神戸":        "ヴィッセル神戸",
	"新潟":        "アルビレックス新潟",
	"札幌":        "北海道コンサドーレ札幌",
	"コンサドーレ札幌":  "北海道コンサドーレ札幌",
	"福岡":        "アビスパ福岡",
	"湘南":        "湘南ベルマーレ",
	"京都":        "京都サンガF.C.",
	"柏":         "柏レイソル",
	"磐田":        "ジュビロ磐田",
	"東京V":       "東京ヴェルディ",
	"ヴェルディ川崎":   "東京ヴェルディ",
	"町田":        "FC町田ゼルビア",
	"鳥栖":        "サガン鳥栖",
	"仙台":        "ベガルタ仙台",
	"千葉":        "ジェフユナイテッド千葉",
	"清水":        "清水エスパルス",
	"岡山":        "ファジアーノ岡山",
	"長崎":        "V・ファーレン長崎",
	"大宮":        "大宮アルディージャ",
	"八戸":        "ヴァンラーレ八戸",
	"今治":        "FC今治",
	"琉球":        "FC琉球",
	"宮崎":        "テゲバジャーロ宮崎",
}

// Built once at init; lookups are read-only afterwards.
var (
	leagueLookup = closed(leagueAliases)
	teamLookup   = closed(teamAliases)
)

// closed returns a copy of m where every value also maps to itself.
// This is what makes Normalize idempotent: a canonical name resolves
// to itself on a second pass instead of falling through changed.
func closed(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)*2)
	for k, v := range m {
		out[k] = v
	}
	for _, v := range m {
		out[v] = v
	}
	return out
}

// Normalize returns the canonical form of a raw league or team label.
//
// It folds fullwidth Latin letters, digits, punctuation and spaces to
// their halfwidth forms, trims, applies residual character fixes, then
// resolves league aliases before team aliases (some abbreviated league
// labels would otherwise shadow club abbreviations). An unrecognized
// label is returned in its folded form; Normalize never fails, so a
// scrape is never aborted by an unmapped name.
func Normalize(raw string) string {
	s := residual.Replace(strings.TrimSpace(width.Fold.String(raw)))
	if c, ok := leagueLookup[s]; ok {
		return c
	}
	if c, ok := teamLookup[s]; ok {
		return c
	}
	return s
}
