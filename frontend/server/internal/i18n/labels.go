// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package i18n

import "context"

// Labels are the UI strings of the trips page.
type Labels struct {
	Lang                   string `json:"lang"`
	AppName                string `json:"appName"`
	Home                   string `json:"home"`
	Trips                  string `json:"trips"`
	LoadingTrips           string `json:"loadingTrips"`
	Chefs                  string `json:"chefs"`
	CookedBy               string `json:"cookedBy"`
	Back                   string `json:"back"`
	Edit                   string `json:"edit"`
	Cancel                 string `json:"cancel"`
	Ingredients            string `json:"ingredients"`
	Directions             string `json:"directions"`
	IngredientSectionTitle string `json:"ingredientSectionTitle"`
	DirectionSectionTitle  string `json:"directionSectionTitle"`
	AddIngredientsSection  string `json:"addIngredientsSection"`
	AddDirectionsSection   string `json:"addDirectionsSection"`
	SaveChanges            string `json:"saveChanges"`
	UploadImage            string `json:"uploadImage"`
}

var english = Labels{
	Lang:                   "en",
	AppName:                "Ski Trip Cookbook",
	Home:                   "Home",
	Trips:                  "Trips",
	LoadingTrips:           "Loading trips...",
	Chefs:                  "Chefs",
	CookedBy:               "Cooked by",
	Back:                   "← Back",
	Edit:                   "Edit",
	Cancel:                 "Cancel",
	Ingredients:            "Ingredients",
	Directions:             "Directions",
	IngredientSectionTitle: "Ingredient Section Title (Optional)",
	DirectionSectionTitle:  "Description Section Title (Optional)",
	AddIngredientsSection:  "+ Add Ingredients Section",
	AddDirectionsSection:   "+ Add Directions Section",
	SaveChanges:            "Save Changes",
	UploadImage:            "Upload Photo",
}

var japanese = Labels{
	Lang:                   "ja",
	AppName:                "スキー旅行レシピ帳",
	Home:                   "ホーム",
	Trips:                  "旅行",
	LoadingTrips:           "旅行を読み込み中...",
	Chefs:                  "担当",
	CookedBy:               "担当",
	Back:                   "← 戻る",
	Edit:                   "編集",
	Cancel:                 "キャンセル",
	Ingredients:            "材料",
	Directions:             "作り方",
	IngredientSectionTitle: "材料セクションのタイトル（任意）",
	DirectionSectionTitle:  "作り方セクションのタイトル（任意）",
	AddIngredientsSection:  "+ 材料セクションを追加",
	AddDirectionsSection:   "+ 作り方セクションを追加",
	SaveChanges:            "変更を保存",
	UploadImage:            "写真をアップロード",
}

// UserLabels returns the labels in the language of the user, English by default.
func UserLabels(ctx context.Context) Labels {
	if UserLanguage(ctx) == "ja" {
		return japanese
	}
	return english
}
