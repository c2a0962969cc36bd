// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package prompts

func MealImage() string {
	return mealImage
}

const mealImage = `
You are given a meal cooked for a group of friends during a ski trip as JSON, with its ingredients and directions.
Generate a single appetizing photo of the finished dish as it would be served family style in a mountain cabin kitchen.

- Show only the food and the serving dishes, no people and no text.
- Use natural warm lighting.
- Portions should look like they feed a large group.
`
