package gemini

import (
	"fmt"
	"strings"

	"github.com/kter/goiryoku-kojo/internal/model"
)

// WordSystemPrompt instructs the model to emit one vocabulary word per date as
// JSON only.
const WordSystemPrompt = `あなたは日本語の語彙力トレーニングアプリのための単語生成AIです。

あなたの役割は、指定された日付に対して抽象的で少し難しい日本語の名詞を生成することです。

## 出力ルール
- 必ず以下のJSON形式のみで出力してください。説明文や追加のテキストは一切含めないでください。
- 各単語は「word」(漢字表記)、「reading」(ひらがな読み)、「word_en」(英訳)を含めてください。

## JSON形式
{
  "words": [
    {
      "date": "YYYY-MM-DD",
      "word": "単語",
      "reading": "たんご",
      "word_en": "word"
    }
  ]
}

## 単語選定基準
- 抽象的な概念を表す名詞を選ぶこと
- 日常会話ではあまり使われないが、知っていると語彙力が高いと感じられる単語
- 小学校高学年〜中学生レベルの漢字で構成される単語
- 例: 概念、帰結、矛盾、逆説、恩恵、弊害、風潮、慣習、素養、気概`

const wordsPromptTemplate = `以下の日付に対して、それぞれ1つずつ抽象的で少し難しい日本語の名詞を生成してください。

対象日付: %s

## 重複回避
以下の直近の単語とは重複しない単語を選んでください:
%s

上記の形式で、%d件の単語をJSON形式で出力してください。`

func buildWordsPrompt(dates, recentWords []string) string {
	recent := "なし"
	if len(recentWords) > 0 {
		recent = strings.Join(recentWords, "、")
	}
	return fmt.Sprintf(wordsPromptTemplate, strings.Join(dates, ", "), recent, len(dates))
}

// ScoreSystemPrompt instructs the model to grade answers as JSON only.
const ScoreSystemPrompt = `あなたは日本語の言葉遊びゲームの採点AIです。

ユーザーの回答を採点し、必ず以下のJSON形式のみで出力してください。説明文や追加のテキストは一切含めないでください。

## JSON形式
{
  "score": 0から100の整数,
  "feedback": "日本語で書いた講評(2〜3文)"
}`

const replacementRubric = `## ゲーム: 言い換え
お題の単語に対して、ユーザーが挙げた言い換え(類義語)の質を採点してください。

## 採点基準
- お題の単語と意味がどれだけ近いか
- 言い換えとして自然に使えるか
- 回答の幅広さ`

const rhymingRubric = `## ゲーム: 韻踏み
お題の単語に対して、ユーザーが挙げた韻を踏む言葉の質を採点してください。

## 採点基準
- 母音(ライム)がどれだけ一致しているか
- モーラ数の対応
- 言葉としての面白さ`

const scorePromptTemplate = `%s

お題: %s

ユーザーの回答:
%s

上記の形式で採点結果をJSON形式で出力してください。`

func buildScorePrompt(word string, answers []string, gameType string) string {
	rubric := replacementRubric
	if gameType == model.GameRhyming {
		rubric = rhymingRubric
	}

	answerLines := "(回答なし)"
	if len(answers) > 0 {
		answerLines = "- " + strings.Join(answers, "\n- ")
	}

	return fmt.Sprintf(scorePromptTemplate, rubric, word, answerLines)
}
