// Package doxygen converts Doxygen-style comment bodies into Markdown.
//
// Tags start with '@' or '\'. Recognised tags are rewritten:
//
//	@param name, @param[in] name    "* `name` [in]  -" under "# Arguments"
//	@return, @returns, @result      "# Returns"
//	@see, @sa                       "> link" under "# See also"
//	@c, @p                          inline code
//	@ref                            link for URLs, inline code otherwise
//	@a, @e, @em / @b                italics / bold
//	@note, @since, @deprecated      "> **Note** " and friends
//	@remark, @remarks / @li / @par  "> " / "- " / "# "
//	@brief, @short, @{, @}          dropped
//
// Unrecognised tags are kept as written. Each section header is emitted at
// most once. Comment delimiters must be removed before calling [Transform];
// see the comment package.
package doxygen
