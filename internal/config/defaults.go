package config

import "regexp"

// Default returns the canonical configuration: the household's rule set and
// its manual corrections.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{Start: "2020-10", End: "2021-02"},
		Import:   ImportConfig{Format: "mydata", Encoding: "utf-8"},
		Policies: PoliciesConfig{
			Income: []PolicyConfig{
				{Name: "사적금전인수"},
				{Name: "캐쉬백", Literals: []string{"현금IC캐쉬백"}},
				{Name: "급여", Literals: []string{"급여변동상여", "(주)대구은행(인재개발부)", "급여연차보상금", "설고정상여금", "(주)대구은행"}},
				{Name: "상금", Literals: []string{"우리(재)한국장학재단", "대구소프트웨"}},
				{Name: "환불", Patterns: []string{`한국철도공사        \S+`}},
				{Name: "외화매도", Literals: []string{"외화적립지급"}},
				{Name: "자체수입", Literals: []string{"농협윤재상", "신한윤재상", "체크카드캐쉬백", "비씨대금환급"}},
			},
			Loss: []PolicyConfig{
				{Name: "고정지출", Literals: []string{"한화생명02045", "KT4333557702", "전기요금인터넷", "대성 김윤자", "아람머리방", "DL HAIR", "헤어아트#"}},
				{Name: "반고정지출", Literals: []string{"휴포레명품크리닝"}},
				{Name: "쇼핑", Literals: []string{"11번가", "장미가구사", "천냥앤디씨", "롯데하이마트(주)", "롯데역사(주)대구", "옥션윤재상      "}},
				{
					Name:     "소비",
					Literals: []string{"대백마트 (불로)", "AM픽쳐스", "(주)코리아세븐달"},
					Patterns: []string{`(지에스|GS)25( 불로|드림병원|달서동화)점`, `씨유(대구불로대로|밀양무안점|수성롯데캐슬)?`, `(팔공)?(E-|이)마트(24 S대구은)?`, `다이소대구이시`},
				},
				{Name: "놀이", Literals: []string{"(주)마루홀딩스 3", "(주)글로벌스포츠", "앤유피씨(NU PC)", "캐슬PC", "제이와이"}},
				{Name: "여행", Literals: []string{"(주)이비카드 택", "코레일유통(주)대", "(주)이비카드택시", "한국철도공사", "모바일 티머니 충", "(주)인터파크홀딩"}},
				{Name: "외식", Literals: []string{"(주)신세계푸드", "한상바다", "진배기원조할매국", "할리스 봉무공원", "(주)난성/롯데리", "청도새마을휴게소", "버거킹 대구이시", "불로수산"}},
				{Name: "교육", Literals: []string{"한국금융투자협회"}},
				{Name: "외화매수", Literals: []string{"윤재상(537101106"}},
				{Name: "사적금전인도", Patterns: []string{`토스＿\S{3}`}},
				{Name: "자체지출", Literals: []string{"농협윤재상", "카카오페이　　　"}},
				{
					Name:     "수수료",
					Literals: []string{"공공기관", "법원행정처", "OTP발급수수료", "현금카드발급"},
					Patterns: []string{`\*{5} \d{4}년 \d{2}월 영플러스통장 수수료 면`},
				},
			},
		},
		Exceptions: map[string]string{
			"2021-01-19 11:58:01": "L외화매수",
			"2021-01-14 20:11:10": "L놀이",
			"2020-11-22 11:08:23": "I사적금전인수",
			"2021-02-03 18:20:48": "L사적금전인도",
			"2021-02-05 13:28:57": "L외식",
			"2021-02-25 08:55:07": "L소비",
			"2021-02-02 19:31:21": "L교육",
		},
	}
}

// Alternate returns the older keyword configuration. Its keywords matched
// anywhere in the note, so each becomes a ".*<keyword>" pattern. It carries
// no exception table and is never merged with Default.
func Alternate() *Config {
	kw := func(name string, keywords ...string) PolicyConfig {
		pats := make([]string, len(keywords))
		for i, k := range keywords {
			pats[i] = ".*" + regexp.QuoteMeta(k)
		}
		return PolicyConfig{Name: name, Patterns: pats}
	}
	return &Config{
		Analysis: AnalysisConfig{Start: "2020-10", End: "2021-02"},
		Import:   ImportConfig{Format: "mydata", Encoding: "utf-8"},
		Policies: PoliciesConfig{
			Income: []PolicyConfig{
				kw("salary", "급여변동상여", "급여연차보상금", "설고정상여금", "(주)대구은행"),
				kw("award", "우리(재)한국장학재단", "대구소프트웨", "국민0046255"),
				kw("USD unhedge", "외화적립지급"),
				kw("other_income", "영플러스통장 수수료 면", "현금IC캐쉬백", "체크카드캐쉬백", "신한분홍앵두", "카뱅도쿄수박", "카뱅둥근바다", "신한달콤상추", "토스180"),
			},
			Loss: []PolicyConfig{
				kw("convenience", "씨유", "GS25", "이마트24", "지에스25", "코리아세븐달"),
				kw("mart", "대백마트", "천냥앤디씨", "팔공E-마트", "다이소대구이시"),
				kw("shopping", "옥션윤재상      ", "11번가", "롯데하이마트(주)", "롯데역사(주)대구", "장미가구사", "토스페이먼츠(주)"),
				kw("trail", "코레일유통(주)대", "한국철도공사"),
				kw("taxi", "(주)이비카드 택", "(주)이비카드택시"),
				kw("bus and metro", "모바일 티머니 충"),
				kw("monthly", "한화생명02045", "KT4333557702", "대성 김윤자", "전기요금인터넷"),
				kw("hair", "헤어아트#", "DL HAIR", "아람머리방"),
				kw("laundry", "휴포레명품크리닝"),
				kw("eat out", "진배기원조할매국", "(주)신세계푸드", "(주)난성/롯데리", "청도새마을휴게소", "한상바다"),
				kw("room charge", "(주)인터파크홀딩", "(주)마루홀딩스 3"),
				kw("drink", "할리스 봉무공원"),
				kw("sports", "(주)글로벌스포츠"),
				kw("pc room", "앤유피씨(NU PC)"),
				kw("education", "한국금융투자협회"),
				kw("USD hedge", "윤재상(537101106", "537101106608"),
				kw("office work", "OTP발급수수료", "법원행정처", "공공기관", "현금카드발급", "AM픽쳐스"),
				kw("transfer to another bank", "토스＿윤재상　　", "농협윤재상", "카카오페이"),
				kw("personal transaction", "농협김태윤", "토스＿김길자", "토스＿김정오", "농협윤여웅", "농협백승민", "농협김윤자", "농협0125257"),
			},
		},
	}
}
